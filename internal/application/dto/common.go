package dto

// MessageResponse cuerpo de éxito simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}
