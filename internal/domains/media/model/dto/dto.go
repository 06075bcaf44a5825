package dto

import (
	"mime/multipart"
)

type UploadRequest struct {
	File     *multipart.FileHeader `json:"file" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/gif image/webp"`
	FileData multipart.File        `json:"-"`
}

type UploadResponse struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type DeleteRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,required"`
}
