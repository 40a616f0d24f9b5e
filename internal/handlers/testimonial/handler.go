package testimonial

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/testimonial/model/dto"
	"impressions/internal/domains/testimonial/service"
	"impressions/shared/constant"
	"impressions/shared/validator"
	"impressions/transport/http/response"
)

type Handler struct {
	service service.Testimonial
	otel    otel.Otel
}

func New(service service.Testimonial, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/testimonials", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTestimonials)
		routerGroup.Post("/", handler.SaveTestimonial)
		routerGroup.Delete("/{id}", handler.DeleteTestimonial)
	})
}

// GetTestimonials handles listing of testimonials.
// @Summary List testimonials
// @Description List testimonials ordered by display order. With active=true only the testimonials shown on the public site are returned.
// @Tags Testimonials
// @Produce json
// @Param active query bool false "Only active testimonials"
// @Success 200 {object} response.Data[[]dto.TestimonialResponse]
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [get]
// @Security BearerAuth
func (handler *Handler) GetTestimonials(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonials")
	defer scope.End()

	var (
		res []dto.TestimonialResponse
		err error
	)

	if active, _ := strconv.ParseBool(request.URL.Query().Get(constant.RequestParamActive)); active {
		res, err = handler.service.ListActive(ctx)
	} else {
		res, err = handler.service.List(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SaveTestimonial handles creating or updating a testimonial.
// @Summary Save a testimonial
// @Description Create a testimonial when id is empty, otherwise replace the stored testimonial with the given id.
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param request body dto.SaveTestimonialRequest true "Save Testimonial Request"
// @Success 200 {object} response.Data[response.SavedID] "Testimonial updated"
// @Success 201 {object} response.Data[response.SavedID] "Testimonial created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [post]
// @Security BearerAuth
func (handler *Handler) SaveTestimonial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveTestimonial")
	defer scope.End()

	req := dto.SaveTestimonialRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save testimonial")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Testimonial saved")

	code := http.StatusOK
	if req.ID == "" {
		code = http.StatusCreated
	}

	response.WithSavedID(writer, code, id)
}

// DeleteTestimonial handles deletion of a testimonial.
// @Summary Delete a testimonial
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Message "Testimonial deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTestimonial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTestimonial")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete testimonial")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Testimonial deleted successfully")
}
