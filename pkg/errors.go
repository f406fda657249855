package pkg

// AppError is the error shape surfaced by HTTP handlers.
//
// Code is a stable machine-readable identifier, Message is human-readable.
// Cause keeps the underlying error for logging without leaking it to clients.

type AppError struct {
	Code       string
	Message    string
	Cause      error
	HTTPStatus int
	Details    interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPError is the JSON body returned to API clients.
type HTTPError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError carries per-field validation detail to the client.
func NewValidationError(message string, details interface{}) *AppError {
	return &AppError{Code: "VALIDATION_FAILED", Message: message, HTTPStatus: 400, Details: details}
}
