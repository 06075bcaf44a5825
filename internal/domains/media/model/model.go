package model

import "tourism/shared/failure"

const (
	EntityName = "media"

	DriverLocal = "local"
	DriverS3    = "s3"

	ThumbnailPrefix = "thumb_"
)

var (
	ErrEmptyFile     = failure.BadRequestFromString("Uploaded file is empty")
	ErrFileTooLarge  = failure.BadRequestFromString("Uploaded file is too large")
	ErrInvalidName   = failure.BadRequestFromString("Uploaded file has no usable name")
	ErrForeignObject = failure.BadRequestFromString("URL does not belong to this media store")
)

// Object is an uploaded file ready to be written to storage.
type Object struct {
	Name        string
	ContentType string
	Data        []byte
}
