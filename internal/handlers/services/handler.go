package services

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/services/model/dto"
	"impressions/internal/domains/services/service"
	"impressions/shared/constant"
	"impressions/shared/validator"
	"impressions/transport/http/response"
)

type Handler struct {
	service service.Service
	otel    otel.Otel
}

func New(service service.Service, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Post("/", handler.SaveService)
		routerGroup.Delete("/{id}", handler.DeleteService)
	})
}

// GetServices handles listing of offered services.
// @Summary List services
// @Description List services ordered by display order. With active=true only the services shown on the public site are returned.
// @Tags Services
// @Produce json
// @Param active query bool false "Only active services"
// @Success 200 {object} response.Data[[]dto.ServiceResponse]
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	var (
		res []dto.ServiceResponse
		err error
	)

	if active, _ := strconv.ParseBool(request.URL.Query().Get(constant.RequestParamActive)); active {
		res, err = handler.service.ListActive(ctx)
	} else {
		res, err = handler.service.List(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SaveService handles creating or updating a service.
// @Summary Save a service
// @Description Create a service when id is empty, otherwise replace the stored service with the given id.
// @Tags Services
// @Accept json
// @Produce json
// @Param request body dto.SaveServiceRequest true "Save Service Request"
// @Success 200 {object} response.Data[response.SavedID] "Service updated"
// @Success 201 {object} response.Data[response.SavedID] "Service created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [post]
// @Security BearerAuth
func (handler *Handler) SaveService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveService")
	defer scope.End()

	req := dto.SaveServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save service")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Service saved")

	code := http.StatusOK
	if req.ID == "" {
		code = http.StatusCreated
	}

	response.WithSavedID(writer, code, id)
}

// DeleteService handles deletion of a service.
// @Summary Delete a service
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Service deleted successfully")
}
