package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/internal/domains/media/model"
	"tourism/internal/domains/media/model/dto"
	"tourism/internal/domains/media/storage"
	"tourism/shared/constant"
	"tourism/shared/timezone"
)

const bytesPerMB = 1 << 20

type Media interface {
	// Upload stores the file as {unix}_{filename} and, for decodable images, a Lanczos thumbnail beside it.
	Upload(ctx context.Context, req dto.UploadRequest) (dto.UploadResponse, error)
	Delete(ctx context.Context, req dto.DeleteRequest) error
}

type serviceImpl struct {
	storage storage.Storage
	cfg     *config.Config
	otel    otel.Otel
}

func New(storage storage.Storage, cfg *config.Config, otel otel.Otel) Media {
	return &serviceImpl{
		storage: storage,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	base := path.Base(strings.ReplaceAll(req.File.Filename, "\\", "/"))
	if base == "." || base == "/" || base == constant.Empty {
		return res, model.ErrInvalidName
	}

	data, err := s.read(req.FileData)
	if err != nil {
		return res, err
	}

	contentType := req.File.Header.Get(constant.RequestHeaderContentType)
	if contentType == constant.Empty {
		contentType = http.DetectContentType(data)
	}

	object := model.Object{
		Name:        fmt.Sprintf("%d_%s", timezone.Now().Unix(), base),
		ContentType: contentType,
		Data:        data,
	}

	url, err := s.storage.Save(ctx, object)
	if err != nil {
		log.Error().Err(err).Str("name", object.Name).Msg("failed to store upload")

		return res, fmt.Errorf("could not save file: %w", err)
	}

	res.URL = url
	res.Filename = object.Name

	if thumbnail, ok := s.thumbnail(object); ok {
		thumbnailURL, err := s.storage.Save(ctx, thumbnail)
		if err != nil {
			log.Warn().Err(err).Str("name", thumbnail.Name).Msg("failed to store thumbnail")
		} else {
			res.ThumbnailURL = thumbnailURL
		}
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for _, url := range req.URLs {
		if err = s.storage.Delete(ctx, url); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete media")

			return err
		}

		dir, name := path.Split(url)
		if strings.HasPrefix(name, model.ThumbnailPrefix) {
			continue
		}

		if err := s.storage.Delete(ctx, dir+model.ThumbnailPrefix+name); err != nil {
			log.Debug().Err(err).Str("url", url).Msg("no thumbnail removed")
		}
	}

	return nil
}

func (s *serviceImpl) read(file io.Reader) ([]byte, error) {
	limit := int64(s.cfg.Media.MaxSizeMB * bytesPerMB)

	reader := file
	if limit > 0 {
		reader = io.LimitReader(file, limit+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if len(data) == 0 {
		return nil, model.ErrEmptyFile
	}

	if limit > 0 && int64(len(data)) > limit {
		return nil, model.ErrFileTooLarge
	}

	return data, nil
}

// thumbnail scales images wider than the configured width; other files yield ok=false.
func (s *serviceImpl) thumbnail(object model.Object) (model.Object, bool) {
	width := s.cfg.Media.ThumbnailWidth
	if width <= 0 || !strings.HasPrefix(object.ContentType, "image/") {
		return model.Object{}, false
	}

	format, err := imaging.FormatFromFilename(object.Name)
	if err != nil {
		return model.Object{}, false
	}

	img, err := imaging.Decode(bytes.NewReader(object.Data), imaging.AutoOrientation(true))
	if err != nil {
		log.Warn().Err(err).Str("name", object.Name).Msg("failed to decode image for thumbnail")

		return model.Object{}, false
	}

	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		log.Warn().Err(err).Str("name", object.Name).Msg("failed to encode thumbnail")

		return model.Object{}, false
	}

	return model.Object{
		Name:        model.ThumbnailPrefix + object.Name,
		ContentType: object.ContentType,
		Data:        buf.Bytes(),
	}, true
}
