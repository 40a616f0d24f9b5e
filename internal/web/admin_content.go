package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	servicesDto "impressions/internal/domains/services/model/dto"
	testimonialModel "impressions/internal/domains/testimonial/model"
	testimonialDto "impressions/internal/domains/testimonial/model/dto"
	"impressions/shared/constant"
	"impressions/shared/validator"
)

const (
	adminServicesPath     = "/admin/content/services"
	adminTestimonialsPath = "/admin/content/testimonials"
)

type AdminServicesPage struct {
	Services []servicesDto.ServiceResponse
	Form     servicesDto.SaveServiceRequest
	Editing  bool
}

type AdminTestimonialsPage struct {
	Testimonials []testimonialDto.TestimonialResponse
	Form         testimonialDto.SaveTestimonialRequest
	Ratings      []int
	Editing      bool
}

func ratings() []int {
	values := make([]int, 0, testimonialModel.MaxRating)
	for rating := testimonialModel.MaxRating; rating >= testimonialModel.MinRating; rating-- {
		values = append(values, rating)
	}

	return values
}

// ContentSection is one card on the content overview.
type ContentSection struct {
	Title       string
	Description string
	Link        string
}

func contentSections() []ContentSection {
	return []ContentSection{
		{Title: "Services", Description: "Services listed on the home page.", Link: adminServicesPath},
		{Title: "Testimonials", Description: "Reviews from families shown on the home page.", Link: adminTestimonialsPath},
	}
}

func (h *Handler) AdminContent(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "admin_content", h.page(w, r, adminSessionName, "Content", "content", contentSections()))
}

func (h *Handler) AdminServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".AdminServices")
	defer scope.End()

	services, err := h.svc.Services.List(ctx)

	page := AdminServicesPage{
		Services: services,
		Form:     servicesDto.SaveServiceRequest{Active: true},
	}

	if edit := r.URL.Query().Get("edit"); edit != "" {
		for i := range services {
			if services[i].ID == edit {
				page.Form = services[i].ToRequest()
				page.Editing = true
			}
		}
	}

	data := h.page(w, r, adminSessionName, "Services", "services", page)
	if err != nil {
		scope.TraceError(err)

		data.Error = "Services could not be loaded."
	}

	h.render(w, http.StatusOK, "admin_services", data)
}

func (h *Handler) SaveService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".SaveService")
	defer scope.End()

	fail := func(err error) {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("save the service", err))
		h.redirect(w, r, adminServicesPath)
	}

	if err := parseForm(w, r, h.uploadLimit()); err != nil {
		fail(err)

		return
	}

	order, err := formInt(r, "order")
	if err != nil {
		fail(err)

		return
	}

	req := servicesDto.SaveServiceRequest{
		ID:          r.PostForm.Get("id"),
		Title:       r.PostForm.Get("title"),
		Description: r.PostForm.Get("description"),
		ImagePath:   r.PostForm.Get("image_path"),
		Order:       order,
		Active:      formBool(r, "active"),
	}

	image, err := readImage(r)
	if err != nil {
		fail(err)

		return
	}

	if image != nil {
		req.ImagePath = image.name
	}

	if err = validator.ValidateStruct(&req); err != nil {
		fail(err)

		return
	}

	if req.ImagePath, err = h.storeImage(ctx, image, req.ImagePath); err != nil {
		fail(err)

		return
	}

	if _, err = h.svc.Services.Save(ctx, req); err != nil {
		h.discardImage(ctx, image, req.ImagePath)
		fail(err)

		return
	}

	h.addFlash(w, r, adminSessionName, FlashSuccess, "Service saved.")
	h.redirect(w, r, adminServicesPath)
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".DeleteService")
	defer scope.End()

	if err := h.svc.Services.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("delete the service", err))
		h.redirect(w, r, adminServicesPath)

		return
	}

	h.addFlash(w, r, adminSessionName, FlashSuccess, "Service deleted.")
	h.redirect(w, r, adminServicesPath)
}

func (h *Handler) AdminTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".AdminTestimonials")
	defer scope.End()

	testimonials, err := h.svc.Testimonial.List(ctx)

	page := AdminTestimonialsPage{
		Testimonials: testimonials,
		Form:         testimonialDto.SaveTestimonialRequest{Rating: testimonialModel.DefaultRating, Active: true},
		Ratings:      ratings(),
	}

	if edit := r.URL.Query().Get("edit"); edit != "" {
		for i := range testimonials {
			if testimonials[i].ID == edit {
				page.Form = testimonials[i].ToRequest()
				page.Editing = true
			}
		}
	}

	data := h.page(w, r, adminSessionName, "Testimonials", "testimonials", page)
	if err != nil {
		scope.TraceError(err)

		data.Error = "Testimonials could not be loaded."
	}

	h.render(w, http.StatusOK, "admin_testimonials", data)
}

func (h *Handler) SaveTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".SaveTestimonial")
	defer scope.End()

	fail := func(err error) {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("save the testimonial", err))
		h.redirect(w, r, adminTestimonialsPath)
	}

	if err := parseForm(w, r, h.uploadLimit()); err != nil {
		fail(err)

		return
	}

	rating, err := formInt(r, "rating")
	if err != nil {
		fail(err)

		return
	}

	order, err := formInt(r, "order")
	if err != nil {
		fail(err)

		return
	}

	req := testimonialDto.SaveTestimonialRequest{
		ID:       r.PostForm.Get("id"),
		Name:     r.PostForm.Get("name"),
		Location: r.PostForm.Get("location"),
		Message:  r.PostForm.Get("message"),
		Rating:   rating,
		Active:   formBool(r, "active"),
		Order:    order,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		fail(err)

		return
	}

	if _, err = h.svc.Testimonial.Save(ctx, req); err != nil {
		fail(err)

		return
	}

	h.addFlash(w, r, adminSessionName, FlashSuccess, "Testimonial saved.")
	h.redirect(w, r, adminTestimonialsPath)
}

func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".DeleteTestimonial")
	defer scope.End()

	if err := h.svc.Testimonial.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, errorMessage("delete the testimonial", err))
		h.redirect(w, r, adminTestimonialsPath)

		return
	}

	h.addFlash(w, r, adminSessionName, FlashSuccess, "Testimonial deleted.")
	h.redirect(w, r, adminTestimonialsPath)
}
