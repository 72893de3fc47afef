package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/linguaverse/statistics-service/internal/httputil"
	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/middleware"
	"github.com/linguaverse/statistics-service/internal/models"
	"github.com/linguaverse/statistics-service/internal/service"
)

type Handler struct {
	service *service.Service
	logger  *logging.Logger
}

func NewHandler(svc *service.Service, logger *logging.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateEvent handles POST /statistics
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.service.CreateEvent(r.Context(), req.OwnerID, req.Kind, req.Payload)
	if err != nil {
		if errors.Is(err, service.ErrMissingOwnerID) || errors.Is(err, service.ErrMissingKind) {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to create event",
			logging.OwnerID(req.OwnerID),
			logging.Kind(req.Kind),
			logging.Error(err),
		)
		httputil.WriteError(w, http.StatusInternalServerError, "failed to create event")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, event)
}

// GetAllEvents handles GET /statistics
func (h *Handler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.AllEvents(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list events", logging.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

// GetEventsForOwner handles GET /statistics/user/:userId
func (h *Handler) GetEventsForOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.PathTail(r.URL.Path, "/statistics/user/")
	if ownerID == "" {
		httputil.WriteError(w, http.StatusBadRequest, "user id is required")
		return
	}

	events, err := h.service.EventsForOwner(r.Context(), ownerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list events for owner",
			logging.OwnerID(ownerID),
			logging.Error(err),
		)
		httputil.WriteError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

// RecordLogin handles POST /statistics/login. Login recording is best-effort
// telemetry: the response is success regardless of whether the insert landed.
func (h *Handler) RecordLogin(w http.ResponseWriter, r *http.Request) {
	var req models.RecordLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.service.RecordLogin(r.Context(), req.OwnerID)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// StudentRoutes dispatches GET /statistics/student/:id/... by path suffix.
func (h *Handler) StudentRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tail := httputil.PathTail(r.URL.Path, "/statistics/student/")
	studentID, metric, found := strings.Cut(tail, "/")
	if !found || studentID == "" {
		httputil.WriteError(w, http.StatusNotFound, "not found")
		return
	}

	ctx := r.Context()
	switch metric {
	case "dashboard":
		httputil.WriteJSON(w, http.StatusOK, h.service.StudentDashboard(ctx, studentID))
	case "lessons/completed":
		httputil.WriteJSON(w, http.StatusOK, countBody(h.service.CompletedLessonsCount(ctx, studentID)))
	case "active-days":
		httputil.WriteJSON(w, http.StatusOK, countBody(h.service.ActiveDaysCount(ctx, studentID)))
	case "words/learned":
		httputil.WriteJSON(w, http.StatusOK, countBody(h.service.LearnedWordsCount(ctx, studentID)))
	default:
		httputil.WriteError(w, http.StatusNotFound, "not found")
	}
}

// GetRegistrationStats handles GET /statistics/admin/users[/:month]
func (h *Handler) GetRegistrationStats(w http.ResponseWriter, r *http.Request) {
	month := httputil.PathTail(r.URL.Path, "/statistics/admin/users")

	report, err := h.service.UserRegistrationStats(r.Context(), middleware.GetCallerID(r.Context()), month)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, models.ErrInvalidMonth.Error())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// GetLessonStats handles GET /statistics/admin/lessons[/:month]
func (h *Handler) GetLessonStats(w http.ResponseWriter, r *http.Request) {
	month := httputil.PathTail(r.URL.Path, "/statistics/admin/lessons")

	report, err := h.service.LessonStats(r.Context(), middleware.GetCallerID(r.Context()), month)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, models.ErrInvalidMonth.Error())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// GetPlatformStats handles GET /statistics/admin/platform
func (h *Handler) GetPlatformStats(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.PlatformSummary(r.Context()))
}

func countBody(count int) map[string]int {
	return map[string]int{"count": count}
}
