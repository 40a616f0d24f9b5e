package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"impressions/config"
	"impressions/internal/handlers/auth"
	"impressions/internal/handlers/dashboard"
	"impressions/internal/handlers/gallery"
	"impressions/internal/handlers/inquiry"
	"impressions/internal/handlers/media"
	"impressions/internal/handlers/services"
	"impressions/internal/handlers/testimonial"
	"impressions/internal/web"
	"impressions/transport/http/middleware"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Gallery     gallery.Handler
	Services    services.Handler
	Testimonial testimonial.Handler
	Inquiry     inquiry.Handler
	Media       media.Handler
	Dashboard   dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Web            *web.Handler
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
	Gate           *middleware.Gate
	Config         *config.Config
}

// SetupRoutes mounts the JSON API under /api/v1 and the server-rendered site
// at the root. Host routing runs first so admin host paths resolve to /admin.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		middleware.HostRouting(middleware.HostPolicy{
			RestrictAdmin: r.Config.App.AdminHost.Restrict,
			Development:   r.Config.IsDevelopment(),
		}),
		r.App.Tracing,
		r.App.Logging,
		r.App.Metrics,
		r.App.SecurityHeaders,
	)

	router.Route("/api", func(api chi.Router) {
		if r.Config.App.CORS.Enable {
			api.Use(cors.Handler(cors.Options{
				AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
				AllowedMethods:   r.Config.App.CORS.AllowedMethods,
				AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
				AllowCredentials: r.Config.App.CORS.AllowCredentials,
				MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
			}))
		}

		api.Route("/v1", func(routerGroup chi.Router) {
			routerGroup.Use(r.App.RateLimit(), r.AuthRole.Auth, r.AuthRole.RBAC)

			r.DomainHandlers.Auth.Router(routerGroup)
			r.DomainHandlers.Gallery.Router(routerGroup)
			r.DomainHandlers.Services.Router(routerGroup)
			r.DomainHandlers.Testimonial.Router(routerGroup)
			r.DomainHandlers.Inquiry.Router(routerGroup)
			r.DomainHandlers.Media.Router(routerGroup)
			r.DomainHandlers.Dashboard.Router(routerGroup)
		})
	})

	r.Web.Router(router, r.App.RateLimit(), r.Gate.Middleware)
}

func New(
	domainHandlers DomainHandlers,
	web *web.Handler,
	app middleware.AppMiddleware,
	authRole middleware.AuthRole,
	gate *middleware.Gate,
	config *config.Config,
) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Web:            web,
		App:            app,
		AuthRole:       authRole,
		Gate:           gate,
		Config:         config,
	}
}
