// Package base64 reads RFC 2397 data URIs such as data:image/png;base64,....
package base64

import (
	"encoding/base64"
	"errors"
	"strings"
)

const (
	scheme = "data:"
	marker = ";base64,"
)

var ErrNotDataURI = errors.New("value is not a base64 data uri")

type DataURI struct {
	ContentType string
	Data        []byte
}

// GetContentType returns the media type of a data URI, or "" when the value is not one.
func GetContentType(value string) string {
	if !strings.HasPrefix(value, scheme) {
		return ""
	}

	end := strings.Index(value, marker)
	if end == -1 {
		return ""
	}

	return value[len(scheme):end]
}

// DecodedLen is the payload size in bytes without decoding it, or -1 when the value is not a data URI.
func DecodedLen(value string) int {
	end := strings.Index(value, marker)
	if !strings.HasPrefix(value, scheme) || end == -1 {
		return -1
	}

	payload := strings.TrimRight(value[end+len(marker):], "=")

	return base64.RawStdEncoding.DecodedLen(len(payload))
}

func Parse(value string) (DataURI, error) {
	contentType := GetContentType(value)
	if contentType == "" {
		return DataURI{}, ErrNotDataURI
	}

	data, err := base64.StdEncoding.DecodeString(value[strings.Index(value, marker)+len(marker):])
	if err != nil {
		return DataURI{}, errors.Join(ErrNotDataURI, err)
	}

	return DataURI{ContentType: contentType, Data: data}, nil
}
