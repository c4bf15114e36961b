package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate aplica las reglas `validate` de un DTO. Devuelve un domain.Invalid con todos los campos fallidos.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Invalid(err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return domain.Invalid(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func checkPrice(p *decimal.Decimal) error {
	if !p.IsPositive() {
		return domain.Invalid("price must be greater than 0")
	}
	return nil
}

// NormalizeName recorta espacios y lleva el texto a NFC, de modo que nombres
// visualmente idénticos colisionen en la restricción de unicidad.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
