package dto

// ErrorResponse cuerpo de error HTTP: Code estable para máquinas, Message para humanos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (ej. borrado).
type MessageResponse struct {
	Message string `json:"message"`
}
