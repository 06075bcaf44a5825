package otel_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tourism/infras/otel"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(t.Context(), "booking.Create")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"units":        2,
		"nights":       int64(3),
		"rate":         1.5,
		"total_amount": decimal.RequireFromString("150.50"),
		"check_in":     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		"ids":          []string{"a", "b"},
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("insufficient units"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attributes := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attributes[kv.Key] = kv.Value
	}

	assert.Equal(t, int64(2), attributes["units"].AsInt64())
	assert.Equal(t, int64(3), attributes["nights"].AsInt64())
	assert.InDelta(t, 1.5, attributes["rate"].AsFloat64(), 0.0001)
	assert.Equal(t, "150.5", attributes["total_amount"].AsString())
	assert.Equal(t, "2026-01-02 00:00:00 +0000 UTC", attributes["check_in"].AsString())
	assert.Equal(t, []string{"a", "b"}, attributes["ids"].AsStringSlice())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Events(), 1)
}
