package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=../mocks/storage_mock.go -package=mocks

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/infras/otel"
	"tourism/infras/s3"
	"tourism/internal/domains/media/model"
	"tourism/shared/constant"
)

const filePermission = 0o644

// Storage persists uploaded objects and returns the url they are served from.
type Storage interface {
	Save(ctx context.Context, object model.Object) (url string, err error)
	// Delete removes the object behind url. It returns model.ErrForeignObject for urls it did not issue.
	Delete(ctx context.Context, url string) error
}

// New selects the storage driver named in cfg.Media.Driver.
func New(cfg *config.Config, otel otel.Otel) (Storage, error) {
	switch cfg.Media.Driver {
	case model.DriverS3:
		client, err := s3.New(cfg, otel)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 client: %w", err)
		}

		return NewS3(client, cfg.Media.Directory), nil
	case model.DriverLocal, constant.Empty:
		return NewLocal(cfg.Media.UploadDir, cfg.Media.PublicPath, otel)
	default:
		return nil, fmt.Errorf("unknown media driver %q", cfg.Media.Driver)
	}
}

type localStorage struct {
	dir        string
	publicPath string
	otel       otel.Otel
}

// NewLocal stores objects under dir; they are served by the static file route mounted at publicPath.
func NewLocal(dir, publicPath string, otel otel.Otel) (Storage, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &localStorage{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		otel:       otel,
	}, nil
}

func (l *localStorage) Save(ctx context.Context, object model.Object) (url string, err error) {
	_, scope := l.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".media.local.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = os.WriteFile(filepath.Join(l.dir, object.Name), object.Data, filePermission); err != nil {
		log.Error().Err(err).Str("name", object.Name).Msg("failed to write upload")

		return constant.Empty, fmt.Errorf("could not save file: %w", err)
	}

	return l.publicPath + "/" + object.Name, nil
}

func (l *localStorage) Delete(ctx context.Context, url string) (err error) {
	_, scope := l.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".media.local.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, ok := strings.CutPrefix(url, l.publicPath+"/")
	if !ok || name == constant.Empty || name != filepath.Base(name) {
		return model.ErrForeignObject
	}

	if err = os.Remove(filepath.Join(l.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete file: %w", err)
	}

	return nil
}

type s3Storage struct {
	client    s3.S3
	directory string
}

// NewS3 stores objects in the configured bucket under directory.
func NewS3(client s3.S3, directory string) Storage {
	return &s3Storage{
		client:    client,
		directory: strings.Trim(directory, "/"),
	}
}

func (s *s3Storage) Save(ctx context.Context, object model.Object) (string, error) {
	return s.client.PutObject(ctx, path.Join(s.directory, object.Name), object.ContentType, object.Data) //nolint:wrapcheck
}

func (s *s3Storage) Delete(ctx context.Context, url string) error {
	key := s.client.ObjectKeyFromURL(url)
	if key == constant.Empty || !strings.HasPrefix(key, s.directory+"/") {
		return model.ErrForeignObject
	}

	return s.client.DeleteObject(ctx, key) //nolint:wrapcheck
}
