package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/models"
)

const lessonTarget = "lesson-service"

// LessonClient fetches lesson counters from the lesson service.
type LessonClient struct {
	baseURL string
	http    *http.Client
	logger  *logging.Logger
}

// NewLessonClient creates a LessonClient pointing at the given base URL.
func NewLessonClient(baseURL string, timeout time.Duration, logger *logging.Logger) *LessonClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LessonClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// CompletedCount returns the number of lessons the student has completed.
// Resolves to 0 if the lesson service is unreachable.
func (c *LessonClient) CompletedCount(ctx context.Context, studentID string) int {
	endpoint := "/lessons/completed/count"

	var body countResponse
	err := getJSON(ctx, c.http, c.baseURL+endpoint+"/"+url.PathEscape(studentID), &body)
	observeCall(lessonTarget, endpoint, err)
	if err != nil {
		c.logger.ErrorContext(ctx, "completed lessons lookup failed, defaulting to zero",
			logging.Target(lessonTarget),
			logging.StudentID(studentID),
			logging.Error(err),
		)
		return 0
	}

	return body.Count
}

// Stats returns the lesson breakdown for the given month window, stamped
// with the resolved month label. Resolves to an all-zero report if the
// lesson service is unreachable.
func (c *LessonClient) Stats(ctx context.Context, win models.MonthWindow) models.LessonReport {
	endpoint := "/lessons/stats"

	var body struct {
		TotalLessons     int `json:"totalLessons"`
		CompletedLessons int `json:"completedLessons"`
		CancelledLessons int `json:"cancelledLessons"`
	}
	err := getJSON(ctx, c.http, c.baseURL+endpoint+"?"+rangeQuery(win), &body)
	observeCall(lessonTarget, endpoint, err)
	if err != nil {
		c.logger.ErrorContext(ctx, "lesson stats lookup failed, defaulting to zeros",
			logging.Target(lessonTarget),
			logging.Month(win.Label()),
			logging.Error(err),
		)
		return models.LessonReport{Month: win.Label()}
	}

	return models.LessonReport{
		Month:            win.Label(),
		TotalLessons:     body.TotalLessons,
		CompletedLessons: body.CompletedLessons,
		CancelledLessons: body.CancelledLessons,
	}
}

// rangeQuery encodes a month window as the startDate/endDate query pair the
// sibling services expect.
func rangeQuery(win models.MonthWindow) string {
	q := url.Values{}
	q.Set("startDate", win.Start.Format(time.RFC3339))
	q.Set("endDate", win.End.Format(time.RFC3339))
	return q.Encode()
}
