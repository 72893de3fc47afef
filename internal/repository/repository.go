package repository

import (
	"context"
	"errors"
	"time"

	"github.com/linguaverse/statistics-service/internal/models"
)

var (
	ErrEventNotFound = errors.New("activity event not found")
)

// Repository is the append-only activity event store. Events are immutable
// once created; there is no update or delete path.
type Repository interface {
	CreateEvent(ctx context.Context, event *models.ActivityEvent) error
	ListByOwner(ctx context.Context, ownerID string) ([]*models.ActivityEvent, error)
	ListAll(ctx context.Context) ([]*models.ActivityEvent, error)
	ListByKind(ctx context.Context, kind string) ([]*models.ActivityEvent, error)
	ListByOwnerAndKind(ctx context.Context, ownerID, kind string) ([]*models.ActivityEvent, error)
	CountByKindSince(ctx context.Context, kind string, since time.Time) (int, error)
	Close()
}
