package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/gallery/model"
	"impressions/internal/domains/gallery/model/dto"
	"impressions/internal/domains/gallery/service"
	"impressions/shared/constant"
	"impressions/shared/validator"
	"impressions/transport/http/response"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/galleries", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGalleries)
		routerGroup.Get("/featured", handler.GetFeatured)
		routerGroup.Post("/", handler.SaveGallery)
		routerGroup.Delete("/{id}", handler.DeleteGallery)
	})
}

// GetGalleries handles listing of gallery images.
// @Summary List gallery images
// @Description List every gallery image ordered by display order. The optional category narrows the result.
// @Tags Gallery
// @Produce json
// @Param category query string false "Framed, Premium, Special or All"
// @Success 200 {object} response.Data[[]dto.GalleryImageResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries [get]
func (handler *Handler) GetGalleries(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleries")
	defer scope.End()

	var (
		res []dto.GalleryImageResponse
		err error
	)

	category := model.Category(request.URL.Query().Get(constant.RequestParamCategory))
	if category == "" {
		res, err = handler.service.List(ctx)
	} else {
		res, err = handler.service.ListByCategory(ctx, category)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery images")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetFeatured handles listing of featured gallery images.
// @Summary List featured gallery images
// @Description List the gallery images shown on the home page.
// @Tags Gallery
// @Produce json
// @Success 200 {object} response.Data[[]dto.GalleryImageResponse]
// @Failure 500 {object} response.Error
// @Router /v1/galleries/featured [get]
func (handler *Handler) GetFeatured(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeatured")
	defer scope.End()

	res, err := handler.service.ListFeatured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured gallery images")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SaveGallery handles creating or updating a gallery image.
// @Summary Save a gallery image
// @Description Create a gallery image when id is empty, otherwise replace the stored image with the given id.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.SaveGalleryImageRequest true "Save Gallery Image Request"
// @Success 200 {object} response.Data[response.SavedID] "Gallery image updated"
// @Success 201 {object} response.Data[response.SavedID] "Gallery image created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries [post]
// @Security BearerAuth
func (handler *Handler) SaveGallery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveGallery")
	defer scope.End()

	req := dto.SaveGalleryImageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save gallery image")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Gallery image saved")

	code := http.StatusOK
	if req.ID == "" {
		code = http.StatusCreated
	}

	response.WithSavedID(writer, code, id)
}

// DeleteGallery handles deletion of a gallery image.
// @Summary Delete a gallery image
// @Description Delete a gallery image by ID. An uploaded image file is removed from storage as well.
// @Tags Gallery
// @Produce json
// @Param id path string true "Gallery image ID"
// @Success 200 {object} response.Message "Gallery image deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGallery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGallery")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery image")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Gallery image deleted")

	response.WithMessage(writer, http.StatusOK, "Gallery image deleted successfully")
}
