package dto

// Límites de paginación compartidos por handlers y casos de uso.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest query ?limit=&offset= de los listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize aplica el límite por defecto, el tope y un offset no negativo.
func (p PageRequest) Normalize() PageResponse {
	limit, offset := p.Limit, p.Offset
	switch {
	case limit <= 0:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return PageResponse{Limit: limit, Offset: offset}
}

// PageResponse página efectivamente aplicada.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP. Code solo acompaña a errores clasificados.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse respuesta de confirmación.
type MessageResponse struct {
	Message string `json:"mensaje"`
}
