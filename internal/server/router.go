package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/linguaverse/statistics-service/internal/handlers"
	"github.com/linguaverse/statistics-service/internal/middleware"
)

// NewRouter constructs a ServeMux with the statistics API routes registered.
func NewRouter(h *handlers.Handler) http.Handler {
	mux := http.NewServeMux()

	// Health check and metrics
	mux.HandleFunc("/healthz", h.HealthCheck)
	mux.Handle("/metrics", promhttp.Handler())

	// Event log surface
	mux.HandleFunc("/statistics", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.CreateEvent(w, r)
		} else if r.Method == http.MethodGet {
			h.GetAllEvents(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/statistics/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.RecordLogin(w, r)
	})

	mux.HandleFunc("/statistics/user/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.GetEventsForOwner(w, r)
	})

	// Student report routes
	mux.HandleFunc("/statistics/student/", h.StudentRoutes)

	// Admin report routes (caller identity is verified by the gateway)
	mux.HandleFunc("/statistics/admin/users", getOnly(h.GetRegistrationStats))
	mux.HandleFunc("/statistics/admin/users/", getOnly(h.GetRegistrationStats))
	mux.HandleFunc("/statistics/admin/lessons", getOnly(h.GetLessonStats))
	mux.HandleFunc("/statistics/admin/lessons/", getOnly(h.GetLessonStats))
	mux.HandleFunc("/statistics/admin/platform", getOnly(h.GetPlatformStats))

	return middleware.RequestID(middleware.Identity(mux))
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
