package dto

// Formatos de fecha de la API.
const (
	DateLayout      = "02/01/2006"
	DateTimeLayout  = "02/01/2006 15:04"
	TimestampLayout = "02/01/2006 15:04:05"
)

// ErrorResponse sobre de error uniforme de la API.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// LoginResponse token emitido tras un login correcto.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
