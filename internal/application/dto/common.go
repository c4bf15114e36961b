package dto

import "github.com/shopspring/decimal"

func init() {
	// Los precios viajan como número JSON (19.99), no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// PageRequest paginación para listados (skip/limit).
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// PageDefaults límites configurables de los listados.
type PageDefaults struct {
	DefaultLimit int
	MaxLimit     int
}

// Normalize acota los valores: skip negativo pasa a 0, limit negativo al default y
// por encima del máximo al máximo. limit=0 se respeta y produce una página vacía.
func (p *PageRequest) Normalize(d PageDefaults) {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 0 {
		p.Limit = d.DefaultLimit
	}
	if d.MaxLimit > 0 && p.Limit > d.MaxLimit {
		p.Limit = d.MaxLimit
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
