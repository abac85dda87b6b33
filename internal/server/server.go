package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/WheelOfFortune_Go/internal/game"
	"github.com/osse101/WheelOfFortune_Go/internal/handler"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/metrics"
	"github.com/osse101/WheelOfFortune_Go/internal/sse"
	"github.com/osse101/WheelOfFortune_Go/internal/zone"
)

// Options are the listener and security settings
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	MaxZone        int
}

// Dependencies are the services routes are bound to
type Dependencies struct {
	Game  game.Service
	Items handler.ItemLookup
	Zones zone.Resolver
	Store handler.Pinger
	Hub   *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			// no WriteTimeout: /events streams for the life of the client
		},
	}
}

// NewRouter builds the HTTP routes and middleware stack
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	if opts.APIKey == "" {
		logger.Warn(LogMsgAuthDisabled)
	}

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(DefaultMaxRequestsInWindow, DefaultRateWindow)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(deps.Store))
	r.Get(PathVersion, handler.HandleVersion(opts.Version))
	r.Handle(PathMetrics, promhttp.Handler())

	if deps.Hub != nil {
		r.Get(PathEvents, sse.Handler(deps.Hub))
	}

	gameHandler := handler.NewGameHandler(deps.Game)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/game", func(r chi.Router) {
			r.Get("/", gameHandler.HandleGetState)
			r.Get("/summary", gameHandler.HandleGetSummary)
			r.Post("/spin", gameHandler.HandleSpin)
			r.Post("/spin-to", gameHandler.HandleSpinTo)
			r.Post("/spin/complete", gameHandler.HandleCompleteSpin)
			r.Post("/popup/close", gameHandler.HandleClosePopup)
			r.Post("/revive", gameHandler.HandleRevive)
			r.Post("/trash", gameHandler.HandleTrash)
			r.Post("/cash-out", gameHandler.HandleCashOut)
			r.Post("/reset", gameHandler.HandleResetProgress)
		})

		r.Get("/items", handler.HandleListItems(deps.Items))
		r.Get("/items/{id}", handler.HandleGetItem(deps.Items))
		r.Get("/zones/{zone}", handler.HandleGetZone(deps.Zones, opts.MaxZone))
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
