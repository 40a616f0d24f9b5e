package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"impressions/config"
	"impressions/infras/otel"
	"impressions/infras/s3"
	"impressions/internal/domains/media/model"
	"impressions/shared/constant"
	"impressions/shared/failure"
	"impressions/shared/validator"
)

type Media interface {
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
	Remove(ctx context.Context, url string) error
	RequestLimit() int64
}

type serviceImpl struct {
	s3     s3.S3
	otel   otel.Otel
	config *config.Config
}

func New(s3 s3.S3, otel otel.Otel, config *config.Config) Media {
	return &serviceImpl{
		s3:     s3,
		otel:   otel,
		config: config,
	}
}

// UploadFilename returns a collision-resistant name for an upload made at now.
func UploadFilename(ext string, now time.Time) string {
	return fmt.Sprintf("%s-%d.%s", model.FilePrefix, now.UnixMilli(), strings.TrimPrefix(ext, "."))
}

// DetectContentType prefers the declared content type and sniffs the bytes when
// none was sent.
func DetectContentType(declared string, data []byte) string {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
		return mediaType
	}

	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(data))

	return mediaType
}

// Upload stores an image in the bucket and returns its public URL. The filename
// is used as given, apart from path components, so callers choose unique names.
func (s *serviceImpl) Upload(ctx context.Context, data []byte, filename, contentType string) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(data) == 0 {
		return constant.Empty, failure.BadRequestFromString("file is empty")
	}

	contentType = DetectContentType(contentType, data)

	if err = validator.ValidateVar(contentType, "mimetypes="+model.AllowedContentTypes()); err != nil {
		return constant.Empty, failure.BadRequestFromString(fmt.Sprintf("unsupported file type %q", contentType))
	}

	if err = validator.ValidateVar(len(data), fmt.Sprintf("maxfilesize=%d", s.config.External.S3.MaxUploadMB)); err != nil {
		return constant.Empty, failure.BadRequestFromString(fmt.Sprintf("file exceeds %d MB", s.config.External.S3.MaxUploadMB))
	}

	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == constant.Empty {
		return constant.Empty, failure.BadRequestFromString("file name is required")
	}

	scope.SetAttribute("file.name", name)

	url, err = s.s3.UploadFileBytes(ctx, s.config.External.S3.Directory, name, contentType, data)
	if err != nil {
		log.Error().Err(err).Str("file", name).Msg("failed to upload file")

		return constant.Empty, fmt.Errorf("failed to upload file: %w", err)
	}

	return url, nil
}

// Remove deletes an uploaded object by its public URL. URLs outside the bucket
// are ignored.
func (s *serviceImpl) Remove(ctx context.Context, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := s.s3.GetObjectNameFromURL(url)
	if key == constant.Empty {
		return nil
	}

	if err = s.s3.DeleteFile(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to remove uploaded file")

		return fmt.Errorf("failed to remove uploaded file: %w", err)
	}

	return nil
}

func (s *serviceImpl) RequestLimit() int64 {
	return model.RequestLimit(s.config.External.S3.MaxUploadMB)
}
