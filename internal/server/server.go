package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/observability/tracing"
	"github.com/naffleslabs/nft-staking-service/internal/services"
)

// CallerHeader carries the verified caller identity. It is injected by the
// fronting auth proxy; the service only compares it against stored identities.
const CallerHeader = "X-Caller-Id"

// Server exposes the staking operations over HTTP.
type Server struct {
	router  *chi.Mux
	service *services.Service
	db      db.DbInterface
	srv     *http.Server
}

func New(cfg *config.ServerConfig, service *services.Service, dbClient db.DbInterface) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		db:      dbClient,
	}

	s.setupRoutes()

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(traceMiddleware)

	s.router.Get("/healthcheck", s.handleHealthcheck)

	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/initialize", s.handleInitialize)
		r.Get("/status", s.handleStatus)

		r.Post("/admins", s.handleAddAdmin)
		r.Patch("/admins/{adminID}", s.handleSetAdminActive)
		r.Post("/pause", s.handlePause)
		r.Post("/unpause", s.handleUnpause)

		r.Post("/collections", s.handleAddCollection)
		r.Get("/collections", s.handleListCollections)
		r.Put("/collections/{collectionID}/rewards", s.handleUpdateCollectionRewards)
		r.Put("/collections/{collectionID}/validated", s.handleValidateCollection)

		r.Post("/positions", s.handleStake)
		r.Get("/positions/{positionID}", s.handleGetPosition)
		r.Post("/positions/{positionID}/claim", s.handleClaim)
		r.Post("/positions/{positionID}/emergency-unlock", s.handleEmergencyUnlock)
	})
}

// traceMiddleware gives every request its own trace id so handler and service
// log lines correlate.
func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.InjectTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Start blocks serving requests until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.srv.Addr).Msg("Starting API server")
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down API server")
	return s.srv.Shutdown(ctx)
}
