package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaverse/statistics-service/internal/models"
)

func seedEvent(t *testing.T, repo *InMemoryRepository, ownerID, kind string, createdAt time.Time) *models.ActivityEvent {
	t.Helper()
	event := &models.ActivityEvent{
		OwnerID:   ownerID,
		Kind:      kind,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.CreateEvent(context.Background(), event))
	return event
}

func TestInMemoryRepository_CreateEventAssignsIDAndTimestamp(t *testing.T) {
	repo := NewInMemoryRepository()

	event := &models.ActivityEvent{OwnerID: "u-1", Kind: "login"}
	require.NoError(t, repo.CreateEvent(context.Background(), event))

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestInMemoryRepository_ListByOwnerAndKind(t *testing.T) {
	repo := NewInMemoryRepository()
	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	seedEvent(t, repo, "u-1", "login", base)
	seedEvent(t, repo, "u-1", "login", base.Add(48*time.Hour))
	seedEvent(t, repo, "u-1", "page_view", base.Add(time.Hour))
	seedEvent(t, repo, "u-2", "login", base.Add(2*time.Hour))

	events, err := repo.ListByOwnerAndKind(context.Background(), "u-1", "login")
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Most recent first
	assert.Equal(t, base.Add(48*time.Hour), events[0].CreatedAt)
	assert.Equal(t, base, events[1].CreatedAt)
	for _, e := range events {
		assert.Equal(t, "u-1", e.OwnerID)
		assert.Equal(t, "login", e.Kind)
	}
}

func TestInMemoryRepository_ListByKindAcrossOwners(t *testing.T) {
	repo := NewInMemoryRepository()
	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	seedEvent(t, repo, "u-1", "login", base)
	seedEvent(t, repo, "u-2", "login", base.Add(time.Minute))
	seedEvent(t, repo, "u-3", "lesson_started", base.Add(2*time.Minute))

	events, err := repo.ListByKind(context.Background(), "login")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestInMemoryRepository_CountByKindSince(t *testing.T) {
	repo := NewInMemoryRepository()
	cutoff := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	seedEvent(t, repo, "u-1", "login", cutoff.Add(-time.Second))
	seedEvent(t, repo, "u-1", "login", cutoff) // boundary is inclusive
	seedEvent(t, repo, "u-1", "login", cutoff.Add(time.Hour))
	seedEvent(t, repo, "u-2", "page_view", cutoff.Add(time.Hour))

	count, err := repo.CountByKindSince(context.Background(), "login", cutoff)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInMemoryRepository_ListAllReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	seedEvent(t, repo, "u-1", "login", time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC))

	first, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Mutating a returned event must not corrupt the store
	first[0].OwnerID = "tampered"

	second, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-1", second[0].OwnerID)
}
