package model

// Error codes returned in ErrorResponse.Code
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse is the JSON body of every API error
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
