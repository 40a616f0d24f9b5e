package handler

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"impressions/config"
	"impressions/di"
	"impressions/shared/logger"
	transport "impressions/transport/http"
)

var (
	server  *transport.HTTP
	initErr error
	once    sync.Once
)

func initialize() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if initErr = cfg.Validate(); initErr != nil {
		return
	}

	server, initErr = di.InitializeService()
}

// Handler serves one request on a serverless runtime. The service graph is
// built on the first call and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(initialize)

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	server.ServeHTTP(w, r)
}
