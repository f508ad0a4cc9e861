package handler

import (
	"net/http"
	"portfolio/config"
	"portfolio/di"
	"portfolio/infras/metrics"
	"portfolio/shared/logger"
	"portfolio/transport/http/response"
	"sync"

	transport "portfolio/transport/http"
)

var (
	server  *transport.HTTP
	initErr error
	once    sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		metrics.Register()

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		response.WithUnhealthy(w)

		return
	}

	server.ServeHTTP(w, r)
}
