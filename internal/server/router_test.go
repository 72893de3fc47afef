package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linguaverse/statistics-service/internal/handlers"
	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/models"
	"github.com/linguaverse/statistics-service/internal/repository"
	"github.com/linguaverse/statistics-service/internal/service"
)

type noopLessons struct{}

func (noopLessons) CompletedCount(context.Context, string) int { return 0 }
func (noopLessons) Stats(_ context.Context, win models.MonthWindow) models.LessonReport {
	return models.LessonReport{Month: win.Label()}
}

type noopVocabulary struct{}

func (noopVocabulary) LearnedWordsCount(context.Context, string) int { return 0 }
func (noopVocabulary) LanguagePairStats(context.Context) []models.LanguagePairCount {
	return []models.LanguagePairCount{}
}

type noopUsers struct{}

func (noopUsers) RegistrationStats(_ context.Context, win models.MonthWindow) models.RegistrationReport {
	return models.RegistrationReport{Month: win.Label()}
}

func newTestRouter() http.Handler {
	logger := logging.NewWithHandler(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := service.NewService(repository.NewInMemoryRepository(), noopLessons{}, noopVocabulary{}, noopUsers{}, logger)
	return NewRouter(handlers.NewHandler(svc, logger))
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"create event", http.MethodPost, "/statistics", `{"userId":"u-1","type":"login"}`, http.StatusCreated},
		{"list events", http.MethodGet, "/statistics", "", http.StatusOK},
		{"events method not allowed", http.MethodDelete, "/statistics", "", http.StatusMethodNotAllowed},
		{"record login", http.MethodPost, "/statistics/login", `{"userId":"u-1"}`, http.StatusOK},
		{"record login wrong method", http.MethodGet, "/statistics/login", "", http.StatusMethodNotAllowed},
		{"events for owner", http.MethodGet, "/statistics/user/u-1", "", http.StatusOK},
		{"dashboard", http.MethodGet, "/statistics/student/s-1/dashboard", "", http.StatusOK},
		{"completed lessons", http.MethodGet, "/statistics/student/s-1/lessons/completed", "", http.StatusOK},
		{"active days", http.MethodGet, "/statistics/student/s-1/active-days", "", http.StatusOK},
		{"learned words", http.MethodGet, "/statistics/student/s-1/words/learned", "", http.StatusOK},
		{"student wrong method", http.MethodPost, "/statistics/student/s-1/dashboard", "", http.StatusMethodNotAllowed},
		{"admin users current month", http.MethodGet, "/statistics/admin/users", "", http.StatusOK},
		{"admin users selected month", http.MethodGet, "/statistics/admin/users/2024-07", "", http.StatusOK},
		{"admin users invalid month", http.MethodGet, "/statistics/admin/users/garbage", "", http.StatusBadRequest},
		{"admin lessons", http.MethodGet, "/statistics/admin/lessons", "", http.StatusOK},
		{"admin platform", http.MethodGet, "/statistics/admin/platform", "", http.StatusOK},
		{"admin platform wrong method", http.MethodPost, "/statistics/admin/platform", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_PropagatesRequestID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
