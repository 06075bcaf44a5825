package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/config"
	"tourism/infras/kafka"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	occurred := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	msg := kafka.Message{
		Key:   "TRIP-ABC123",
		Value: kafka.NewEvent("booking.created", occurred, map[string]string{"status": "DRAFT"}),
	}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, "TRIP-ABC123", string(out.Key))
	assert.JSONEq(t, `{"type":"booking.created","occurred_at":"2025-01-02T03:04:05Z","payload":{"status":"DRAFT"}}`, string(out.Value))

	var decoded struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, "booking.created", decoded.Type)
}

func TestMessage_ToKafkaMessageInvalidValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestNew_WithoutBrokersDiscards(t *testing.T) {
	client := kafka.New(&config.Config{})

	err := client.SendMessages(context.Background(), "booking.events", kafka.Message{Key: "k", Value: 1})
	assert.NoError(t, err)

	assert.NoError(t, client.Close())
}
