package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("check_out must be after check_in")), wantCode: http.StatusBadRequest, wantMsg: "check_out must be after check_in"},
		{name: "bad request from string", err: failure.BadRequestFromString("update request cannot be empty"), wantCode: http.StatusBadRequest, wantMsg: "update request cannot be empty"},
		{name: "internal", err: failure.InternalError(errors.New("reference space exhausted")), wantCode: http.StatusInternalServerError, wantMsg: "reference space exhausted"},
		{name: "not found", err: failure.NotFound("Booking not found"), wantCode: http.StatusNotFound, wantMsg: "Booking not found"},
		{name: "conflict", err: failure.Conflict("Not enough units available"), wantCode: http.StatusBadRequest, wantMsg: "Not enough units available"},
		{name: "forbidden", err: failure.ForbiddenError, wantCode: http.StatusForbidden, wantMsg: "You don't have the required permissions"},
		{name: "invalid credentials", err: failure.InvalidCredentials, wantCode: http.StatusForbidden, wantMsg: "Could not validate credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.wantCode, f.Code)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "failure", err: failure.NotFound("Destination not found"), want: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("reserve: %w", failure.Conflict("Inventory is blocked")), want: http.StatusBadRequest},
		{name: "plain error", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}
