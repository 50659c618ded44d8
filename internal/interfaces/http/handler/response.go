package handler

// Error bodies. The status prefix is part of the message clients match on,
// and not every route uses one.
const (
	msgScientistValidation = "400: Validation Error"
	msgValidation          = "400: Validation error"
	msgScientistNotFound   = "404: Scientist not found"
	msgPlanetNotFound      = "404: Planet not found"
	msgPatchNotFound       = "Scientist not found"
	msgInternal            = "500: Internal server error"
	msgScientistDeleted    = "Scientist successfully deleted"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}
