package errors

import "net/http"

// HTTPError representa un error con su código de estado HTTP asociado.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError crea un HTTPError con el código y mensaje dados.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helpers para los errores más comunes
var (
	ErrBadRequest    = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrUnauthorized  = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrForbidden     = func(msg string) *HTTPError { return NewHTTPError(http.StatusForbidden, msg) }
	ErrNotFound      = func(msg string) *HTTPError { return NewHTTPError(http.StatusNotFound, msg) }
	ErrConflict      = func(msg string) *HTTPError { return NewHTTPError(http.StatusConflict, msg) }
	ErrUnprocessable = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnprocessableEntity, msg) }
)
