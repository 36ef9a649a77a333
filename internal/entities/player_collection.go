package entities

import (
	"time"
)

// PlayerCollection is the persisted state for one player: their owned
// instances, per-instance upgrade records, and crafting currency. Version
// backs the optimistic compare-and-set in the repository; the engines never
// see or touch it.
type PlayerCollection struct {
	OwnerID        string                    `json:"owner_id"`
	Cards          Collection                `json:"cards"`
	UpgradeRecords map[string]*UpgradeRecord `json:"upgrade_records"`
	Currency       int                       `json:"currency"`
	Version        int64                     `json:"version"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// NewPlayerCollection creates an empty collection for an owner
func NewPlayerCollection(ownerID string, now time.Time) *PlayerCollection {
	return &PlayerCollection{
		OwnerID:        ownerID,
		Cards:          Collection{},
		UpgradeRecords: make(map[string]*UpgradeRecord),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a deep copy of the player collection
func (p *PlayerCollection) Clone() *PlayerCollection {
	if p == nil {
		return nil
	}
	out := *p
	out.Cards = p.Cards.Clone()
	out.UpgradeRecords = CloneRecords(p.UpgradeRecords)
	return &out
}
