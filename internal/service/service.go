package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/metrics"
	"github.com/linguaverse/statistics-service/internal/models"
	"github.com/linguaverse/statistics-service/internal/repository"
)

var (
	ErrMissingOwnerID = errors.New("owner id is required")
	ErrMissingKind    = errors.New("event kind is required")
)

// LessonSource supplies lesson counters. Implementations are fail-soft:
// they resolve to zero values instead of returning errors.
type LessonSource interface {
	CompletedCount(ctx context.Context, studentID string) int
	Stats(ctx context.Context, win models.MonthWindow) models.LessonReport
}

// VocabularySource supplies vocabulary counters. Fail-soft.
type VocabularySource interface {
	LearnedWordsCount(ctx context.Context, userID string) int
	LanguagePairStats(ctx context.Context) []models.LanguagePairCount
}

// RegistrationSource supplies user-registration counters. Fail-soft.
type RegistrationSource interface {
	RegistrationStats(ctx context.Context, win models.MonthWindow) models.RegistrationReport
}

// Service derives rollup metrics from the activity event store and composes
// them with counters pulled from the sibling services. All collaborators are
// injected at construction; the service holds no mutable state across
// requests.
type Service struct {
	repo       repository.Repository
	lessons    LessonSource
	vocabulary VocabularySource
	users      RegistrationSource
	logger     *logging.Logger
}

func NewService(
	repo repository.Repository,
	lessons LessonSource,
	vocabulary VocabularySource,
	users RegistrationSource,
	logger *logging.Logger,
) *Service {
	return &Service{
		repo:       repo,
		lessons:    lessons,
		vocabulary: vocabulary,
		users:      users,
		logger:     logger,
	}
}

// CreateEvent validates and stores a new activity event. Persistence errors
// propagate to the caller.
func (s *Service) CreateEvent(ctx context.Context, ownerID, kind string, payload map[string]interface{}) (*models.ActivityEvent, error) {
	if ownerID == "" {
		return nil, ErrMissingOwnerID
	}
	if kind == "" {
		return nil, ErrMissingKind
	}

	event := &models.ActivityEvent{
		OwnerID: ownerID,
		Kind:    kind,
		Payload: payload,
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		metrics.EventWriteErrors.Inc()
		return nil, fmt.Errorf("failed to store activity event: %w", err)
	}

	metrics.EventsRecordedTotal.WithLabelValues(kind).Inc()
	return event, nil
}

// EventsForOwner lists all stored events for one owner, most recent first.
// There is no meaningful default for a list of records, so persistence
// errors propagate.
func (s *Service) EventsForOwner(ctx context.Context, ownerID string) ([]*models.ActivityEvent, error) {
	if ownerID == "" {
		return nil, ErrMissingOwnerID
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// AllEvents lists every stored event, most recent first.
func (s *Service) AllEvents(ctx context.Context) ([]*models.ActivityEvent, error) {
	return s.repo.ListAll(ctx)
}

// RecordLogin stores a login-kind event for the owner. Login recording is
// best-effort telemetry: an insert failure is logged and swallowed, the
// caller always sees success.
func (s *Service) RecordLogin(ctx context.Context, ownerID string) {
	_, err := s.CreateEvent(ctx, ownerID, models.LoginKind, map[string]interface{}{
		"action":    "user_login",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record login event",
			logging.OwnerID(ownerID),
			logging.Error(err),
		)
	}
}
