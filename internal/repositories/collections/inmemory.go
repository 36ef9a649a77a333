package collections

import (
	"context"
	"sync"
	"time"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the collection
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu          sync.RWMutex
	collections map[string]*entities.PlayerCollection
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		collections: make(map[string]*entities.PlayerCollection),
	}
}

// Create stores a new player collection
func (r *InMemoryRepository) Create(ctx context.Context, collection *entities.PlayerCollection) error {
	if collection == nil {
		return dderr.InvalidArgument("collection cannot be nil")
	}
	if collection.OwnerID == "" {
		return dderr.InvalidArgument("owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collections[collection.OwnerID]; exists {
		return dderr.AlreadyExistsf("collection for owner '%s' already exists", collection.OwnerID).
			WithMeta("owner_id", collection.OwnerID)
	}

	r.collections[collection.OwnerID] = collection.Clone()
	return nil
}

// Get retrieves a player collection by owner ID
func (r *InMemoryRepository) Get(ctx context.Context, ownerID string) (*entities.PlayerCollection, error) {
	if ownerID == "" {
		return nil, dderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	collection, exists := r.collections[ownerID]
	if !exists {
		return nil, dderr.NotFoundf("collection for owner '%s' not found", ownerID).
			WithMeta("owner_id", ownerID)
	}

	return collection.Clone(), nil
}

// GetByOwners retrieves collections for several owners at once
func (r *InMemoryRepository) GetByOwners(ctx context.Context, ownerIDs []string) ([]*entities.PlayerCollection, error) {
	out := make([]*entities.PlayerCollection, 0, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		collection, err := r.Get(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		out = append(out, collection)
	}
	return out, nil
}

// Update persists a modified collection with a compare-and-set on Version
func (r *InMemoryRepository) Update(ctx context.Context, collection *entities.PlayerCollection) error {
	if collection == nil {
		return dderr.InvalidArgument("collection cannot be nil")
	}
	if collection.OwnerID == "" {
		return dderr.InvalidArgument("owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.collections[collection.OwnerID]
	if !exists {
		return dderr.NotFoundf("collection for owner '%s' not found", collection.OwnerID).
			WithMeta("owner_id", collection.OwnerID)
	}

	if stored.Version != collection.Version {
		return dderr.Conflictf("collection for owner '%s' changed underneath us (stored version %d, ours %d)",
			collection.OwnerID, stored.Version, collection.Version).
			WithMeta("owner_id", collection.OwnerID).
			WithMeta("stored_version", stored.Version)
	}

	collection.Version++
	collection.UpdatedAt = time.Now().UTC()
	r.collections[collection.OwnerID] = collection.Clone()
	return nil
}

// Delete removes a player collection
func (r *InMemoryRepository) Delete(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return dderr.InvalidArgument("owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collections[ownerID]; !exists {
		return dderr.NotFoundf("collection for owner '%s' not found", ownerID).
			WithMeta("owner_id", ownerID)
	}

	delete(r.collections, ownerID)
	return nil
}
