package media

import (
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/media/model"
	"impressions/internal/domains/media/model/dto"
	"impressions/internal/domains/media/service"
	"impressions/shared/constant"
	"impressions/shared/failure"
	"impressions/shared/timezone"
	"impressions/transport/http/response"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/media", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.Upload)
	})
}

// Upload handles an image upload to object storage.
// @Summary Upload an image
// @Description Upload an image and return its public URL. The stored name is generated from the upload time.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} response.Data[dto.UploadResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 413 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/upload [post]
// @Security BearerAuth
func (handler *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Upload")
	defer scope.End()

	r.Body = http.MaxBytesReader(w, r.Body, handler.service.RequestLimit())

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.FromBodyError(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, err)

		return
	}

	contentType := service.DetectContentType(fileHeader.Header.Get(constant.RequestHeaderContentType), data)

	ext, ok := model.Extension(contentType)
	if !ok {
		ext = path.Ext(fileHeader.Filename)
	}

	url, err := handler.service.Upload(ctx, data, service.UploadFilename(ext, timezone.Now()), contentType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, dto.UploadResponse{URL: url})
}
