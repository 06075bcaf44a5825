package base64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/shared/base64"
)

const pixel = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: pixel, expected: "image/png"},
		{name: "json", input: "data:application/json;base64,eyJuYW1lIjoiSm9obiBEb2UifQ==", expected: "application/json"},
		{name: "parameters kept", input: "data:image/svg+xml;charset=utf-8;base64,PHN2Zz48L3N2Zz4=", expected: "image/svg+xml;charset=utf-8"},
		{name: "empty string", input: "", expected: ""},
		{name: "missing scheme", input: "image/png;base64,AAAA", expected: ""},
		{name: "missing base64 marker", input: "data:image/png,AAAA", expected: ""},
		{name: "only scheme", input: "data:", expected: ""},
		{name: "empty media type", input: "data:;base64,", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecodedLen(t *testing.T) {
	assert.Equal(t, 11, base64.DecodedLen("data:text/plain;base64,SGVsbG8gV29ybGQ="))
	assert.Equal(t, 19, base64.DecodedLen("data:application/json;base64,eyJuYW1lIjoiSm9obiBEb2UifQ=="))
	assert.Equal(t, -1, base64.DecodedLen("SGVsbG8gV29ybGQ="))
}

func TestParse(t *testing.T) {
	uri, err := base64.Parse("data:text/plain;base64,SGVsbG8gV29ybGQ=")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", uri.ContentType)
	assert.Equal(t, []byte("Hello World"), uri.Data)

	_, err = base64.Parse("data:text/plain;base64,***")
	assert.ErrorIs(t, err, base64.ErrNotDataURI)

	_, err = base64.Parse("plain text")
	assert.ErrorIs(t, err, base64.ErrNotDataURI)
}
