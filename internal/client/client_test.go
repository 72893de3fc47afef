package client

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/models"
)

func testLogger(buf *bytes.Buffer) *logging.Logger {
	return logging.NewWithHandler(slog.NewTextHandler(buf, nil))
}

func julyWindow(t *testing.T) models.MonthWindow {
	t.Helper()
	win, err := models.ParseMonthWindow("2024-07", time.Now())
	require.NoError(t, err)
	return win
}

func TestLessonClient_CompletedCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lessons/completed/count/s-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 12}`))
	}))
	defer server.Close()

	c := NewLessonClient(server.URL, time.Second, testLogger(&bytes.Buffer{}))
	assert.Equal(t, 12, c.CompletedCount(context.Background(), "s-1"))
}

func TestLessonClient_CompletedCount_FailSoft(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"count": `))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			var buf bytes.Buffer
			c := NewLessonClient(server.URL, time.Second, testLogger(&buf))

			assert.Equal(t, 0, c.CompletedCount(context.Background(), "s-1"))
			assert.Contains(t, buf.String(), "completed lessons lookup failed")
		})
	}
}

func TestLessonClient_CompletedCount_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	var buf bytes.Buffer
	c := NewLessonClient(server.URL, time.Second, testLogger(&buf))

	assert.Equal(t, 0, c.CompletedCount(context.Background(), "s-1"))
	assert.Contains(t, buf.String(), "completed lessons lookup failed")
}

func TestLessonClient_Stats(t *testing.T) {
	win := julyWindow(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lessons/stats", r.URL.Path)
		assert.Equal(t, "2024-07-01T00:00:00Z", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-07-31T23:59:59Z", r.URL.Query().Get("endDate"))
		w.Write([]byte(`{"totalLessons": 40, "completedLessons": 30, "cancelledLessons": 5}`))
	}))
	defer server.Close()

	c := NewLessonClient(server.URL, time.Second, testLogger(&bytes.Buffer{}))
	report := c.Stats(context.Background(), win)

	assert.Equal(t, models.LessonReport{
		Month:            "2024-07",
		TotalLessons:     40,
		CompletedLessons: 30,
		CancelledLessons: 5,
	}, report)
}

func TestLessonClient_Stats_FailSoftKeepsMonthLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewLessonClient(server.URL, time.Second, testLogger(&buf))
	report := c.Stats(context.Background(), julyWindow(t))

	assert.Equal(t, models.LessonReport{Month: "2024-07"}, report)
	assert.Contains(t, buf.String(), "lesson stats lookup failed")
}

func TestVocabularyClient_LearnedWordsCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lexicon/learned/count/u-1", r.URL.Path)
		w.Write([]byte(`{"count": 250}`))
	}))
	defer server.Close()

	c := NewVocabularyClient(server.URL, time.Second, testLogger(&bytes.Buffer{}))
	assert.Equal(t, 250, c.LearnedWordsCount(context.Background(), "u-1"))
}

func TestVocabularyClient_LanguagePairStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translation/stats", r.URL.Path)
		w.Write([]byte(`[
			{"source": "en", "target": "fr", "count": 900},
			{"source": "en", "target": "es", "count": 400}
		]`))
	}))
	defer server.Close()

	c := NewVocabularyClient(server.URL, time.Second, testLogger(&bytes.Buffer{}))
	pairs := c.LanguagePairStats(context.Background())

	require.Len(t, pairs, 2)
	assert.Equal(t, models.LanguagePairCount{Source: "en", Target: "fr", Count: 900}, pairs[0])
}

func TestVocabularyClient_LanguagePairStats_FailSoftEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewVocabularyClient(server.URL, time.Second, testLogger(&buf))

	pairs := c.LanguagePairStats(context.Background())
	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
	assert.Contains(t, buf.String(), "language pair stats lookup failed")
}

func TestVocabularyClient_LanguagePairStats_NullBodyBecomesEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer server.Close()

	c := NewVocabularyClient(server.URL, time.Second, testLogger(&bytes.Buffer{}))
	pairs := c.LanguagePairStats(context.Background())

	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
}

func TestUsersClient_RegistrationStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/users/stats", r.URL.Path)
		assert.Equal(t, "2024-07-01T00:00:00Z", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-07-31T23:59:59Z", r.URL.Query().Get("endDate"))
		w.Write([]byte(`{"newStudents": 17, "newTeachers": 3}`))
	}))
	defer server.Close()

	c := NewUsersClient(server.URL, time.Second, testLogger(&bytes.Buffer{}))
	report := c.RegistrationStats(context.Background(), julyWindow(t))

	assert.Equal(t, models.RegistrationReport{
		Month:       "2024-07",
		NewStudents: 17,
		NewTeachers: 3,
		TotalNew:    20,
	}, report)
}

func TestUsersClient_RegistrationStats_FailSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewUsersClient(server.URL, time.Second, testLogger(&buf))
	report := c.RegistrationStats(context.Background(), julyWindow(t))

	assert.Equal(t, models.RegistrationReport{Month: "2024-07"}, report)
	assert.Contains(t, buf.String(), "registration stats lookup failed")
}
