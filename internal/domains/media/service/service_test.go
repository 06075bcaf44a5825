package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tourism/config"
	"tourism/infras/otel/mocks"
	mediaMocks "tourism/internal/domains/media/mocks"
	"tourism/internal/domains/media/model"
	"tourism/internal/domains/media/model/dto"
	"tourism/internal/domains/media/service"
	"tourism/shared/failure"
)

type file struct {
	*bytes.Reader
}

func (file) Close() error { return nil }

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func upload(name, contentType string, data []byte) dto.UploadRequest {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return dto.UploadRequest{
		File:     &multipart.FileHeader{Filename: name, Header: header, Size: int64(len(data))},
		FileData: file{bytes.NewReader(data)},
	}
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Media.MaxSizeMB = 1
	cfg.Media.ThumbnailWidth = 40

	return cfg
}

func TestMediaService_Upload(t *testing.T) {
	t.Run("stores image and thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mediaMocks.NewMockStorage(ctrl)

		var stored []model.Object

		store.EXPECT().Save(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, object model.Object) (string, error) {
				stored = append(stored, object)

				return "/static/uploads/" + object.Name, nil
			})

		svc := service.New(store, newConfig(), mocks.NewOtel())

		res, err := svc.Upload(context.Background(), upload("valley view.png", "image/png", pngBytes(t, 120, 60)))
		require.NoError(t, err)

		assert.Regexp(t, `^\d+_valley view\.png$`, res.Filename)
		assert.Equal(t, "/static/uploads/"+res.Filename, res.URL)
		assert.Equal(t, "/static/uploads/thumb_"+res.Filename, res.ThumbnailURL)

		require.Len(t, stored, 2)

		thumb, err := imaging.Decode(bytes.NewReader(stored[1].Data))
		require.NoError(t, err)
		assert.Equal(t, 40, thumb.Bounds().Dx())
		assert.Equal(t, 20, thumb.Bounds().Dy())
	})

	t.Run("small image keeps its size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mediaMocks.NewMockStorage(ctrl)

		var thumbnail model.Object

		store.EXPECT().Save(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, object model.Object) (string, error) {
				thumbnail = object

				return "/u/" + object.Name, nil
			})

		svc := service.New(store, newConfig(), mocks.NewOtel())

		_, err := svc.Upload(context.Background(), upload("icon.png", "image/png", pngBytes(t, 16, 16)))
		require.NoError(t, err)

		img, err := imaging.Decode(bytes.NewReader(thumbnail.Data))
		require.NoError(t, err)
		assert.Equal(t, 16, img.Bounds().Dx())
	})

	t.Run("undecodable image is stored without thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mediaMocks.NewMockStorage(ctrl)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/u/x.png", nil)

		svc := service.New(store, newConfig(), mocks.NewOtel())

		res, err := svc.Upload(context.Background(), upload("x.png", "image/png", []byte("not really a png")))
		require.NoError(t, err)
		assert.Empty(t, res.ThumbnailURL)
	})

	t.Run("strips client directories from the name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mediaMocks.NewMockStorage(ctrl)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, object model.Object) (string, error) {
				assert.False(t, strings.Contains(object.Name, "/"))
				assert.True(t, strings.HasSuffix(object.Name, "_evil.png"))

				return "/u/" + object.Name, nil
			})

		cfg := newConfig()
		cfg.Media.ThumbnailWidth = 0

		svc := service.New(store, cfg, mocks.NewOtel())

		_, err := svc.Upload(context.Background(), upload("../../etc/evil.png", "image/png", []byte("data")))
		require.NoError(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.New(mediaMocks.NewMockStorage(ctrl), newConfig(), mocks.NewOtel())

		_, err := svc.Upload(context.Background(), upload("big.png", "image/png", make([]byte, 1<<20+1)))
		assert.ErrorIs(t, err, model.ErrFileTooLarge)
	})

	t.Run("empty file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.New(mediaMocks.NewMockStorage(ctrl), newConfig(), mocks.NewOtel())

		_, err := svc.Upload(context.Background(), upload("empty.png", "image/png", nil))
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mediaMocks.NewMockStorage(ctrl)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		svc := service.New(store, newConfig(), mocks.NewOtel())

		_, err := svc.Upload(context.Background(), upload("x.png", "image/png", []byte("data")))
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestMediaService_Delete(t *testing.T) {
	t.Run("removes file and thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mediaMocks.NewMockStorage(ctrl)
		store.EXPECT().Delete(gomock.Any(), "/static/uploads/1_a.png").Return(nil)
		store.EXPECT().Delete(gomock.Any(), "/static/uploads/thumb_1_a.png").Return(errors.New("missing"))

		svc := service.New(store, newConfig(), mocks.NewOtel())

		assert.NoError(t, svc.Delete(context.Background(), dto.DeleteRequest{URLs: []string{"/static/uploads/1_a.png"}}))
	})

	t.Run("foreign url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mediaMocks.NewMockStorage(ctrl)
		store.EXPECT().Delete(gomock.Any(), "https://elsewhere/x.png").Return(model.ErrForeignObject)

		svc := service.New(store, newConfig(), mocks.NewOtel())

		err := svc.Delete(context.Background(), dto.DeleteRequest{URLs: []string{"https://elsewhere/x.png"}})
		assert.ErrorIs(t, err, model.ErrForeignObject)
	})
}
