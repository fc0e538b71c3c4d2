package dto

// ErrorResponse cuerpo de error HTTP. Success siempre false; Code es un
// identificador estable para el cliente y Message el texto mostrable.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError construye un ErrorResponse.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
