package dto

import (
	"net/http"

	"github.com/ecom/backend/internal/domain/shared"
)

// HTTP-facing error codes beyond the domain taxonomy
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = shared.CodeInternal
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:      http.StatusNotFound,
	shared.CodeAlreadyExists: http.StatusConflict,
	shared.CodeInvalidInput:  http.StatusBadRequest,
	shared.CodeInternal:      http.StatusInternalServerError,
	ErrCodeBadRequest:        http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromError converts any error into an error response plus its HTTP status.
// Domain errors keep their code and message; anything else is reported as an
// opaque internal error.
func FromError(err error) (int, Response) {
	code := shared.ErrorCode(err)
	if code == "" {
		return http.StatusInternalServerError, NewErrorResponse(ErrCodeInternal, "internal error")
	}
	return GetHTTPStatus(code), NewErrorResponse(code, err.Error())
}
