package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/inquiry/model"
	"impressions/internal/domains/inquiry/model/dto"
	"impressions/internal/domains/inquiry/service"
	"impressions/shared/constant"
	"impressions/shared/failure"
	"impressions/shared/validator"
	"impressions/transport/http/response"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInquiry)
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
	})
}

// CreateInquiry handles a customer enquiry.
// @Summary Submit an enquiry
// @Description Store a customer enquiry. It always starts with status new.
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 201 {object} response.Data[response.SavedID] "Enquiry received"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inquiry received")

	response.WithSavedID(writer, http.StatusCreated, id)
}

// GetInquiries handles listing of enquiries.
// @Summary List enquiries
// @Description List enquiries, newest first. The optional status narrows the result; all keeps every status.
// @Tags Inquiries
// @Produce json
// @Param status query string false "new, contacted, booked, completed or all"
// @Success 200 {object} response.Data[[]dto.InquiryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	filter := request.URL.Query().Get(constant.RequestParamStatus)
	if filter != constant.Empty && filter != model.StatusFilterAll && !model.Status(filter).IsValid() {
		err := failure.BadRequestFromString("unknown inquiry status " + filter)
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.FilterByStatus(res, filter))
}

// UpdateStatus handles an enquiry status change.
// @Summary Update enquiry status
// @Description Move an enquiry to any status and optionally replace its notes.
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body dto.UpdateInquiryStatusRequest true "Update Inquiry Status Request"
// @Success 200 {object} response.Message "Inquiry updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateInquiryStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inquiry status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inquiry status updated to " + string(req.Status))

	response.WithMessage(writer, http.StatusOK, "Inquiry updated successfully")
}
