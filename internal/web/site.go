package web

import (
	"net/http"

	"github.com/rs/zerolog/log"

	inquiryDto "impressions/internal/domains/inquiry/model/dto"
	siteDto "impressions/internal/domains/site/model/dto"
	"impressions/shared/constant"
	"impressions/shared/validator"
)

const enquiryAnchor = "/#enquiry"

// Home renders the landing page. A failed section load renders every section
// empty with an error banner.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".Home")
	defer scope.End()

	home, err := h.svc.Site.Home(ctx)

	data := h.page(w, r, siteSessionName, "Baby Hand & Foot Impressions", "home", home)
	if err != nil {
		scope.TraceError(err)

		data.Error = "Some of this page could not be loaded. Please refresh in a moment."
	}

	h.render(w, http.StatusOK, "home", data)
}

// Gallery renders the portfolio filtered by the category tab.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".Gallery")
	defer scope.End()

	gallery, err := h.svc.Site.Gallery(ctx, r.URL.Query().Get(constant.RequestParamCategory))
	if gallery.Categories == nil {
		gallery.Categories = siteDto.FilterCategories()
	}

	data := h.page(w, r, siteSessionName, "Gallery", "gallery", gallery)
	if err != nil {
		scope.TraceError(err)

		data.Error = "The gallery could not be loaded. Please refresh in a moment."
	}

	h.render(w, http.StatusOK, "gallery", data)
}

// SubmitEnquiry stores the public enquiry form and returns to the form with a
// confirmation or the reason it was rejected.
func (h *Handler) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".SubmitEnquiry")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, siteSessionName, FlashError, "Your enquiry could not be read. Please try again.")
		h.redirect(w, r, enquiryAnchor)

		return
	}

	req := inquiryDto.CreateInquiryRequest{
		Name:    r.PostForm.Get("name"),
		Phone:   r.PostForm.Get("phone"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
		Service: r.PostForm.Get("service"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, siteSessionName, FlashError, userMessage(err))
		h.redirect(w, r, enquiryAnchor)

		return
	}

	if _, err := h.svc.Inquiry.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to store enquiry")

		h.addFlash(w, r, siteSessionName, FlashError, "We could not send your enquiry. Please try again or call us.")
		h.redirect(w, r, enquiryAnchor)

		return
	}

	h.addFlash(w, r, siteSessionName, FlashSuccess, "Thank you! We will get back to you shortly.")
	h.redirect(w, r, enquiryAnchor)
}
