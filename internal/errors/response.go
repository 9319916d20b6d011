package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorDetail is the error payload embedded in ErrorResponse.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse converts any error into the API error shape. Unmarked
// errors are reported as internal errors without leaking the message.
func NewErrorResponse(err error) *ErrorResponse {
	var ie *InternalError
	if stderrors.As(err, &ie) {
		code := ErrInternal
		if ie.Code() != nil {
			code = ie.Code()
		}
		return &ErrorResponse{
			Success: false,
			Error: ErrorDetail{
				Code:    code.Error(),
				Message: ie.Hint(),
				Details: ie.Details(),
			},
		}
	}
	return &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    ErrInternal.Error(),
			Message: "An unexpected error occurred",
		},
	}
}

// HTTPStatusFromErr maps a marked error to an HTTP status code.
func HTTPStatusFromErr(err error) int {
	switch {
	case stderrors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case stderrors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	case stderrors.Is(err, ErrGuardCancelled):
		return http.StatusConflict
	case stderrors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
