//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	goRedis "github.com/redis/go-redis/v9"

	"impressions/config"
	"impressions/infras/jwt"
	"impressions/infras/kafka"
	"impressions/infras/otel"
	"impressions/infras/postgres"
	"impressions/infras/redis"
	"impressions/infras/s3"
	"impressions/internal/notifier"
	"impressions/internal/seed"
	"impressions/internal/web"
	"impressions/permissions"
	"impressions/shared/cache"
	"impressions/transport/http"
	"impressions/transport/http/middleware"
	"impressions/transport/http/router"

	authService "impressions/internal/domains/auth/service"
	dashboardService "impressions/internal/domains/dashboard/service"
	galleryRepository "impressions/internal/domains/gallery/repository"
	galleryService "impressions/internal/domains/gallery/service"
	inquiryRepository "impressions/internal/domains/inquiry/repository"
	inquiryService "impressions/internal/domains/inquiry/service"
	mediaService "impressions/internal/domains/media/service"
	servicesRepository "impressions/internal/domains/services/repository"
	servicesService "impressions/internal/domains/services/service"
	siteService "impressions/internal/domains/site/service"
	testimonialRepository "impressions/internal/domains/testimonial/repository"
	testimonialService "impressions/internal/domains/testimonial/service"
	userRepository "impressions/internal/domains/user/repository"
	userService "impressions/internal/domains/user/service"

	authHandler "impressions/internal/handlers/auth"
	dashboardHandler "impressions/internal/handlers/dashboard"
	galleryHandler "impressions/internal/handlers/gallery"
	inquiryHandler "impressions/internal/handlers/inquiry"
	mediaHandler "impressions/internal/handlers/media"
	servicesHandler "impressions/internal/handlers/services"
	testimonialHandler "impressions/internal/handlers/testimonial"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	ProvideGate,
)

var sharedHelpers = wire.NewSet(
	wire.Bind(new(goRedis.Cmdable), new(*goRedis.Client)),
	cache.NewRedisCache,
)

var contentDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
	servicesRepository.New,
	servicesService.New,
	testimonialRepository.New,
	testimonialService.New,
	siteService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	contentDomain,
	inquiryDomain,
	authDomain,
	mediaService.New,
	dashboardService.New,
)

var pages = wire.NewSet(
	wire.Struct(new(web.Services), "*"),
	web.NewSessionStore,
	web.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	galleryHandler.New,
	servicesHandler.New,
	testimonialHandler.New,
	inquiryHandler.New,
	mediaHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		pages,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

func InitializeSeeder() *seed.Seeder {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		s3.New,
		contentDomain,
		userRepository.New,
		userService.New,
		seed.New,
	)

	return &seed.Seeder{}
}

func InitializeNotifier() *notifier.Notifier {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		notifier.New,
	)

	return &notifier.Notifier{}
}
