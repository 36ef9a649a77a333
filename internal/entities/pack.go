package entities

import (
	"time"
)

// PackType selects the pack slot table
type PackType string

const (
	PackTypeStandard PackType = "standard"
	PackTypePremium  PackType = "premium"
)

// Valid reports whether the pack type is known
func (p PackType) Valid() bool {
	return p == PackTypeStandard || p == PackTypePremium
}

// Pack is one generated booster: freshly minted instances plus the best
// rarity pulled, for display
type Pack struct {
	ID          string          `json:"id"`
	Type        PackType        `json:"type"`
	Cards       []*CardInstance `json:"cards"`
	BestRarity  Rarity          `json:"best_rarity"`
	GeneratedAt time.Time       `json:"generated_at"`
}
