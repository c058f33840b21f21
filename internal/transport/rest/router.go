package rest

import (
	"log/slog"
	"net/http"

	"github.com/grimoire-app/grimoire-backend/internal/config"
	"github.com/grimoire-app/grimoire-backend/internal/transport/middleware"
)

// NewHandler assembles the routing table and wraps it with the standard
// middleware chain: RequestID, Logger, Recovery, CORS, RateLimit.
func NewHandler(
	logger *slog.Logger,
	corsCfg config.CORSConfig,
	limiter *middleware.RateLimiter,
	maxPerMinute int,
	words *WordsHandler,
	health *HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/words/{word}", words.Lookup)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
		limiter.Limit(maxPerMinute),
	)

	return chain(mux)
}
