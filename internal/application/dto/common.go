package dto

// ErrorResponse cuerpo de error HTTP. Message es siempre legible para el
// usuario; nunca expone estado interno ni stack traces.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
