package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"suggestbox/internal/config"
	"suggestbox/internal/httpx"
)

const msgWelcome = "مرحباً بك في موقع الاقتراحات العشوائية!"

// Pinger reports whether the backing store is reachable. Satisfied by
// *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Registrar mounts a handler's routes on the /api subtree.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter assembles the full route tree: health probes at the root,
// every domain handler under /api.
func NewRouter(cfg config.Config, log *zap.Logger, db Pinger, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(log))
	r.Use(httpx.RecoveryMiddleware(log))
	r.Use(httpx.CORSMiddleware(cfg.CORSOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			httpx.JSON(w, http.StatusOK, map[string]string{"message": msgWelcome})
		})
		for _, h := range handlers {
			h.Register(r)
		}
	})

	return r
}
