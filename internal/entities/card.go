package entities

import (
	"time"
)

// CardDefinition is a catalog entry. Many owned instances may share one
// definition (duplicates).
type CardDefinition struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Archetype  Archetype `json:"archetype"`
	Rarity     Rarity    `json:"rarity"`
	Series     int       `json:"series"`
	BaseStats  Stats     `json:"base_stats"`
	FlavorText string    `json:"flavor_text,omitempty"`
}

// CardInstance is one owned copy of a catalog definition. Stats is the
// current snapshot (base stats plus cumulative upgrade bonus); the catalog
// fields are denormalized so a collection renders without a catalog lookup.
type CardInstance struct {
	ID           string    `json:"id"`
	DefinitionID string    `json:"definition_id"`
	Name         string    `json:"name"`
	Archetype    Archetype `json:"archetype"`
	Rarity       Rarity    `json:"rarity"`
	Stats        Stats     `json:"stats"`
	ObtainedAt   time.Time `json:"obtained_at"`
}

// NewInstance mints an owned instance of a definition with the given id
func NewInstance(id string, def *CardDefinition, obtainedAt time.Time) *CardInstance {
	return &CardInstance{
		ID:           id,
		DefinitionID: def.ID,
		Name:         def.Name,
		Archetype:    def.Archetype,
		Rarity:       def.Rarity,
		Stats:        def.BaseStats.Clamped(),
		ObtainedAt:   obtainedAt,
	}
}

// Collection is an ordered sequence of owned card instances. Order is
// meaningful: engines that select duplicates do so in stable input order.
type Collection []*CardInstance

// Find returns the instance with the given id, or nil
func (c Collection) Find(instanceID string) *CardInstance {
	for _, inst := range c {
		if inst.ID == instanceID {
			return inst
		}
	}
	return nil
}

// Duplicates returns, in input order, the instances sharing the given
// definition other than excludeID
func (c Collection) Duplicates(definitionID, excludeID string) []*CardInstance {
	var dupes []*CardInstance
	for _, inst := range c {
		if inst.DefinitionID == definitionID && inst.ID != excludeID {
			dupes = append(dupes, inst)
		}
	}
	return dupes
}

// GroupByDefinition groups instances by definition id, preserving input
// order within each group. The returned keys slice preserves first-seen order.
func (c Collection) GroupByDefinition() (keys []string, groups map[string][]*CardInstance) {
	groups = make(map[string][]*CardInstance)
	for _, inst := range c {
		if _, seen := groups[inst.DefinitionID]; !seen {
			keys = append(keys, inst.DefinitionID)
		}
		groups[inst.DefinitionID] = append(groups[inst.DefinitionID], inst)
	}
	return keys, groups
}

// Without returns a copy of the collection with the given instance ids removed
func (c Collection) Without(instanceIDs []string) Collection {
	drop := make(map[string]bool, len(instanceIDs))
	for _, id := range instanceIDs {
		drop[id] = true
	}

	out := make(Collection, 0, len(c))
	for _, inst := range c {
		if !drop[inst.ID] {
			out = append(out, inst)
		}
	}
	return out
}

// Clone returns a deep copy of the collection
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, inst := range c {
		instCopy := *inst
		out[i] = &instCopy
	}
	return out
}
