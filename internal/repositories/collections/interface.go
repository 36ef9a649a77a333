package collections

import (
	"context"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
)

// Repository defines the interface for player collection persistence.
//
// The engines assume at-most-one in-flight mutation per player collection;
// Update enforces that with an optimistic version check: it fails with a
// conflict error when the stored version differs from the version the caller
// read, and advances Version/UpdatedAt on the passed collection on success.
type Repository interface {
	// Create stores a new player collection
	Create(ctx context.Context, collection *entities.PlayerCollection) error

	// Get retrieves a player collection by owner ID
	Get(ctx context.Context, ownerID string) (*entities.PlayerCollection, error)

	// GetByOwners retrieves collections for several owners at once
	GetByOwners(ctx context.Context, ownerIDs []string) ([]*entities.PlayerCollection, error)

	// Update persists a modified collection with a compare-and-set on Version
	Update(ctx context.Context, collection *entities.PlayerCollection) error

	// Delete removes a player collection
	Delete(ctx context.Context, ownerID string) error
}
