package rest

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// RouterConfig holds the router's dependencies
type RouterConfig struct {
	Handler *Handler

	// AllowedOrigins is sent as Access-Control-Allow-Origin; defaults to *
	AllowedOrigins string

	Logger zerolog.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(cfg *RouterConfig) http.Handler {
	r := mux.NewRouter()
	h := cfg.Handler

	r.Use(corsMiddleware(cfg.AllowedOrigins))
	r.Use(loggingMiddleware(cfg.Logger))

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/rooms", h.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms", h.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{code}", h.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/join", h.Join).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/start", h.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/advance", h.Advance).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/expire", h.Expire).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/vote", h.Vote).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/judge-word", h.JudgeWord).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/settings", h.Settings).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/categories", h.Category).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/judge", h.Judge).Methods("POST", "OPTIONS")

	v1.HandleFunc("/ws/rooms/{code}", h.Watch).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Hijack lets websocket upgrades pass through the recorder
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hj.Hijack()
}

func loggingMiddleware(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Msg("http request")
		})
	}
}
