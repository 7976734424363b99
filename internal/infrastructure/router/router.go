package router

import (
	"net/http"

	"flight-recovery-service/internal/interface/handler"
	"flight-recovery-service/pkg/logger"

	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handler.RecoveryHandler, metricsHandler http.Handler, logger logger.Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(corsMiddleware)
	r.Use(loggingMiddleware(logger))

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/recover", h.Recover).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/eligibility", h.CheckEligibility).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/eligibility/batch", h.CheckBatch).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/profile", h.FindProfile).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/profile/complete", h.CompleteInfo).Methods(http.MethodPost, http.MethodOptions)

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(logger logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
