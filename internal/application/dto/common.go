package dto

// Tamaño de página de los listados paginados.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest llega por query string; cero en limit significa DefaultPageLimit.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage completa limit y corrige un offset negativo cuando no pasó por validación.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse devuelve la ventana aplicada.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse es el cuerpo de todo error HTTP: code estable y mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
