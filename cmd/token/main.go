// token emite un JWT HS256 con permiso de escritura sobre el catálogo.
//
// Uso: go run ./cmd/token --subject ops [--minutes 60] [--scope catalog:write]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

func main() {
	subject := pflag.StringP("subject", "s", "admin", "subject (sub) del token")
	scope := pflag.String("scope", jwt.ScopeWrite, "alcance concedido")
	minutes := pflag.IntP("minutes", "m", 0, "minutos de validez (0: JWT_EXPIRATION_MINUTES)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido")
		os.Exit(1)
	}
	exp := *minutes
	if exp <= 0 {
		exp = cfg.JWT.Expiration
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *subject, *scope, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
