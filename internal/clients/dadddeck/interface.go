package dadddeck

//go:generate mockgen -destination=mock/mock_client.go -package=mockdadddeck . Client

import (
	"context"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
)

// ListCardsInput filters a catalog page
type ListCardsInput struct {
	Page     int
	PageSize int
	Rarity   entities.Rarity
	Type     entities.Archetype
	Search   string
}

// ListCardsOutput is one catalog page plus pagination state
type ListCardsOutput struct {
	Cards      []*entities.CardDefinition
	TotalCards int
	HasNext    bool
}

// RandomCardsInput requests random catalog definitions
type RandomCardsInput struct {
	Count   int
	Rarity  entities.Rarity
	Type    entities.Archetype
	Exclude []string
}

// Client is the DadDeck catalog API surface the bot consumes
type Client interface {
	// ListCards fetches one page of the card catalog
	ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error)

	// ListAllCards walks the pagination and returns the whole filtered catalog
	ListAllCards(ctx context.Context, input *ListCardsInput) ([]*entities.CardDefinition, error)

	// GetCard fetches a specific catalog definition by id
	GetCard(ctx context.Context, cardID string) (*entities.CardDefinition, error)

	// RandomCards fetches random catalog definitions, optionally filtered
	RandomCards(ctx context.Context, input *RandomCardsInput) ([]*entities.CardDefinition, error)
}
