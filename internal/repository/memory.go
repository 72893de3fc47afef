package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/linguaverse/statistics-service/internal/models"
)

// InMemoryRepository is a thread-safe in-memory event store used in dev mode
// and tests.
type InMemoryRepository struct {
	events []*models.ActivityEvent
	mu     sync.RWMutex
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		events: []*models.ActivityEvent{},
	}
}

func (r *InMemoryRepository) CreateEvent(_ context.Context, event *models.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		idUUID, _ := uuid.NewV7()
		event.ID = idUUID.String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	stored := *event
	r.events = append(r.events, &stored)
	return nil
}

func (r *InMemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.ActivityEvent, error) {
	return r.filter(func(e *models.ActivityEvent) bool {
		return e.OwnerID == ownerID
	}), nil
}

func (r *InMemoryRepository) ListAll(_ context.Context) ([]*models.ActivityEvent, error) {
	return r.filter(func(*models.ActivityEvent) bool { return true }), nil
}

func (r *InMemoryRepository) ListByKind(_ context.Context, kind string) ([]*models.ActivityEvent, error) {
	return r.filter(func(e *models.ActivityEvent) bool {
		return e.Kind == kind
	}), nil
}

func (r *InMemoryRepository) ListByOwnerAndKind(_ context.Context, ownerID, kind string) ([]*models.ActivityEvent, error) {
	return r.filter(func(e *models.ActivityEvent) bool {
		return e.OwnerID == ownerID && e.Kind == kind
	}), nil
}

func (r *InMemoryRepository) CountByKindSince(_ context.Context, kind string, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.events {
		if e.Kind == kind && !e.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryRepository) Close() {}

// filter returns matching events most recent first, mirroring the ordering
// of the Postgres queries.
func (r *InMemoryRepository) filter(match func(*models.ActivityEvent) bool) []*models.ActivityEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*models.ActivityEvent{}
	for _, e := range r.events {
		if match(e) {
			copied := *e
			result = append(result, &copied)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
