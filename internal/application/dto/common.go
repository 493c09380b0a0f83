package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y acota Limit a max.
func (p *PageRequest) DefaultPage(def, max int) {
	if p.Limit <= 0 {
		p.Limit = def
	}
	if p.Limit > max {
		p.Limit = max
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP. Siempre plano: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse confirmación sin cuerpo de recurso.
type SuccessResponse struct {
	Success bool `json:"success"`
}
