package web

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	inquiryModel "impressions/internal/domains/inquiry/model"
	inquiryDto "impressions/internal/domains/inquiry/model/dto"
	"impressions/shared/constant"
	"impressions/shared/validator"
)

const adminInquiriesPath = "/admin/inquiries"

// StatusCard is one clickable status count. Link toggles the filter.
type StatusCard struct {
	Status inquiryModel.Status
	Count  int
	Active bool
	Link   string
}

type AdminInquiriesPage struct {
	Inquiries []inquiryDto.InquiryResponse
	Cards     []StatusCard
	Filter    string
	Total     int
}

func inquiriesLink(filter string) string {
	if filter == "" || filter == inquiryModel.StatusFilterAll {
		return adminInquiriesPath
	}

	return adminInquiriesPath + "?" + url.Values{constant.RequestParamStatus: {filter}}.Encode()
}

// NewAdminInquiriesPage counts every enquiry per status and keeps the rows
// matching filter. An unknown filter shows everything.
func NewAdminInquiriesPage(inquiries []inquiryDto.InquiryResponse, filter string) AdminInquiriesPage {
	if !inquiryModel.Status(filter).IsValid() {
		filter = inquiryModel.StatusFilterAll
	}

	counts := inquiryDto.CountByStatus(inquiries)

	cards := make([]StatusCard, 0, len(inquiryModel.Statuses()))
	for _, status := range inquiryModel.Statuses() {
		cards = append(cards, StatusCard{
			Status: status,
			Count:  counts[status],
			Active: filter == string(status),
			Link:   inquiriesLink(inquiryDto.ToggleStatusFilter(filter, string(status))),
		})
	}

	return AdminInquiriesPage{
		Inquiries: inquiryDto.FilterByStatus(inquiries, filter),
		Cards:     cards,
		Filter:    filter,
		Total:     len(inquiries),
	}
}

func (h *Handler) AdminInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".AdminInquiries")
	defer scope.End()

	inquiries, err := h.svc.Inquiry.List(ctx)

	page := NewAdminInquiriesPage(inquiries, r.URL.Query().Get(constant.RequestParamStatus))

	data := h.page(w, r, adminSessionName, "Enquiries", "inquiries", page)
	if err != nil {
		scope.TraceError(err)

		data.Error = "Enquiries could not be loaded."
	}

	h.render(w, http.StatusOK, "admin_inquiries", data)
}

// UpdateInquiryStatus applies the status and notes from the row form, then
// returns to the list with the same filter.
func (h *Handler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".UpdateInquiryStatus")
	defer scope.End()

	back := inquiriesLink(r.URL.Query().Get(constant.RequestParamStatus))

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("update the enquiry", err))
		h.redirect(w, r, back)

		return
	}

	req := inquiryDto.UpdateInquiryStatusRequest{
		Status: inquiryModel.Status(r.PostForm.Get("status")),
	}

	if _, ok := r.PostForm["notes"]; ok {
		notes := r.PostForm.Get("notes")
		req.Notes = &notes
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("update the enquiry", err))
		h.redirect(w, r, back)

		return
	}

	if err := h.svc.Inquiry.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("update the enquiry", err))
		h.redirect(w, r, back)

		return
	}

	h.addFlash(w, r, adminSessionName, FlashSuccess, "Enquiry updated.")
	h.redirect(w, r, back)
}
