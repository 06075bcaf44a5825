package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/shared/failure"
	"tourism/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "failure keeps its code", err: failure.NotFound("Booking not found"), wantCode: http.StatusNotFound, wantBody: `{"error":"Booking not found"}`},
		{name: "plain error is masked", err: errors.New("pq: relation \"bookings\" does not exist"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"Internal server error"}`},
		{name: "wrapped failure keeps its message", err: fmt.Errorf("reserve: %w", failure.Conflict("Not enough units available")), wantCode: http.StatusBadRequest, wantBody: `{"error":"Not enough units available"}`},
		{name: "invalid credentials", err: failure.InvalidCredentials, wantCode: http.StatusForbidden, wantBody: `{"error":"Could not validate credentials"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestWithJSONAndMessage(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithJSON(recorder, http.StatusCreated, map[string]bool{"available": true})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"available":true}}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	response.WithMessage(recorder, http.StatusOK, "ok")

	assert.JSONEq(t, `{"message":"ok"}`, recorder.Body.String())
}

func TestWithAttachment(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithAttachment(recorder, "application/pdf", "voucher-TRIP-ABC123.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="voucher-TRIP-ABC123.pdf"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", recorder.Body.String())
}
