package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"

	"impressions/config"
	"impressions/infras/otel"
	authDto "impressions/internal/domains/auth/model/dto"
	authSvc "impressions/internal/domains/auth/service"
	dashboardSvc "impressions/internal/domains/dashboard/service"
	gallerySvc "impressions/internal/domains/gallery/service"
	inquirySvc "impressions/internal/domains/inquiry/service"
	mediaSvc "impressions/internal/domains/media/service"
	servicesSvc "impressions/internal/domains/services/service"
	siteSvc "impressions/internal/domains/site/service"
	testimonialSvc "impressions/internal/domains/testimonial/service"
	"impressions/shared/constant"
	"impressions/shared/timezone"
)

// Services groups the domain services the pages read from and write to.
type Services struct {
	Site        siteSvc.Site
	Gallery     gallerySvc.Gallery
	Services    servicesSvc.Service
	Testimonial testimonialSvc.Testimonial
	Inquiry     inquirySvc.Inquiry
	Media       mediaSvc.Media
	Auth        authSvc.Auth
	Dashboard   dashboardSvc.Dashboard
}

type Handler struct {
	svc       Services
	store     sessions.Store
	templates *TemplateCache
	otel      otel.Otel
	config    *config.Config
}

// PageData is the value every template receives.
type PageData struct {
	Title     string
	Nav       string
	CSRFField template.HTML
	Flashes   []Flash
	User      *authDto.CurrentUser
	Year      int
	Error     string
	Data      any
}

func New(svc Services, store *sessions.CookieStore, otel otel.Otel, config *config.Config) (*Handler, error) {
	templates := NewTemplateCache()

	if err := templates.Load(templateFS); err != nil {
		return nil, err
	}

	return &Handler{
		svc:       svc,
		store:     store,
		templates: templates,
		otel:      otel,
		config:    config,
	}, nil
}

// Router mounts the public site and the admin pages. limit throttles the form
// posts and gate guards every admin page except the login page.
func (h *Handler) Router(router chi.Router, limit, gate func(http.Handler) http.Handler) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("embedded static assets are missing")
	}

	router.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(static))))

	router.Group(func(r chi.Router) {
		r.Use(h.csrf())

		r.Get(constant.PathHome, h.Home)
		r.Get("/gallery", h.Gallery)
		r.With(limit).Post("/enquiry", h.SubmitEnquiry)

		r.Get(constant.PathAdminLogin, h.LoginPage)
		r.With(limit).Post(constant.PathAdminLogin, h.Login)

		r.Group(func(r chi.Router) {
			r.Use(gate, h.withUser)

			r.Post("/admin/logout", h.Logout)
			r.Get(constant.PathAdmin, h.Dashboard)

			r.Get("/admin/gallery", h.AdminGallery)
			r.Post("/admin/gallery", h.SaveGallery)
			r.Post("/admin/gallery/{id}/delete", h.DeleteGallery)

			r.Get("/admin/content", h.AdminContent)
			r.Get("/admin/content/services", h.AdminServices)
			r.Post("/admin/content/services", h.SaveService)
			r.Post("/admin/content/services/{id}/delete", h.DeleteService)

			r.Get("/admin/content/testimonials", h.AdminTestimonials)
			r.Post("/admin/content/testimonials", h.SaveTestimonial)
			r.Post("/admin/content/testimonials/{id}/delete", h.DeleteTestimonial)

			r.Get("/admin/inquiries", h.AdminInquiries)
			r.Post("/admin/inquiries/{id}/status", h.UpdateInquiryStatus)
		})
	})
}

// csrf protects every form post. Outside production the server is reached over
// plain HTTP, which the origin check must be told about.
func (h *Handler) csrf() func(http.Handler) http.Handler {
	protect := csrf.Protect(
		[]byte(h.config.Web.CSRFKey),
		csrf.Secure(h.config.Web.CookieSecure),
		csrf.Path(constant.PathHome),
		csrf.TrustedOrigins(h.config.Web.TrustedOrigins),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !h.config.Web.CookieSecure {
				r = csrf.PlaintextHTTPRequest(r)
			}

			protected.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request, flashSession, title, nav string, data any) PageData {
	return PageData{
		Title:     title,
		Nav:       nav,
		CSRFField: csrf.TemplateField(r),
		Flashes:   h.flashes(w, r, flashSession),
		User:      currentUser(r),
		Year:      timezone.Now().Year(),
		Data:      data,
	}
}

// render executes a page into a buffer first so a template failure never
// leaves a half-written response.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data PageData) {
	tmpl := h.templates.Get(name)
	if tmpl == nil {
		log.Error().Str("template", name).Msg("template not found")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to write page")
	}
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func errorMessage(action string, err error) string {
	return fmt.Sprintf("Could not %s: %s", action, userMessage(err))
}
