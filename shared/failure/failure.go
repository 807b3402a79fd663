package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error the transport layer can render as-is: Code is the HTTP
// status and Message is safe to show to the caller.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps a decoding or parsing error as a 400. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// Validation returns a 400 naming the offending field, e.g. "amount must be
// greater than zero".
func Validation(field, msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: fmt.Sprintf("%s %s", field, msg)}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

// NotFound returns a 404. The message usually reads "<entity> not found".
func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

// Conflict returns a 409 for writes that clash with current state, such as a
// duplicate email or a transition out of a terminal status.
func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// GetCode returns the status carried by err, or 500 when err is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// HasCode reports whether err carries a Failure with the given code.
func HasCode(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}

func IsNotFound(err error) bool {
	return HasCode(err, http.StatusNotFound)
}

func IsConflict(err error) bool {
	return HasCode(err, http.StatusConflict)
}
