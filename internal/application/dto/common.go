package dto

// ErrorResponse cuerpo de error HTTP: {error, message}. Error lleva la
// etiqueta de la taxonomía (not_found, conflict, ...), nunca detalle interno.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusResponse respuesta de operaciones sin cuerpo propio (DELETE).
type StatusResponse struct {
	Status string `json:"status"`
}
