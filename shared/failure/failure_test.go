package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("unexpected EOF")), code: http.StatusBadRequest, message: "unexpected EOF"},
		{name: "bad request from string", err: failure.BadRequestFromString("amount is required"), code: http.StatusBadRequest, message: "amount is required"},
		{name: "validation", err: failure.Validation("amount", "must be greater than zero"), code: http.StatusBadRequest, message: "amount must be greater than zero"},
		{name: "unauthorized", err: failure.Unauthorized("Token has expired"), code: http.StatusUnauthorized, message: "Token has expired"},
		{name: "forbidden", err: failure.Forbidden("user account is deactivated"), code: http.StatusForbidden, message: "user account is deactivated"},
		{name: "forbidden sentinel", err: failure.ForbiddenError, code: http.StatusForbidden, message: "You don't have the required permissions"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
		{name: "conflict", err: failure.Conflict("invoice already issued"), code: http.StatusConflict, message: "invoice already issued"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.message)
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}

func TestBadRequestNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to record payment: %w", failure.NotFound("booking not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("disk full")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestHasCode(t *testing.T) {
	notFound := fmt.Errorf("approve: %w", failure.NotFound("access request not found"))
	conflict := fmt.Errorf("submit: %w", failure.Conflict("email already registered"))

	assert.True(t, failure.IsNotFound(notFound))
	assert.False(t, failure.IsConflict(notFound))
	assert.True(t, failure.IsConflict(conflict))
	assert.False(t, failure.IsNotFound(errors.New("timeout")))
	assert.True(t, failure.HasCode(conflict, http.StatusConflict))
}
