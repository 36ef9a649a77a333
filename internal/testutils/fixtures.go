package testutils

import (
	"fmt"
	"time"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
)

// CatalogFixture returns a small card catalog spanning every rarity tier
func CatalogFixture() []*entities.CardDefinition {
	return []*entities.CardDefinition{
		{
			ID:        "bbq_dad_001",
			Name:      "Grillmaster Gary",
			Archetype: entities.ArchetypeBBQ,
			Rarity:    entities.RarityCommon,
			Series:    1,
			BaseStats: entities.Stats{Grilling: 70, DadJokes: 55, Napping: 40},
		},
		{
			ID:        "handy_dad_001",
			Name:      "Duct Tape Dave",
			Archetype: entities.ArchetypeHandy,
			Rarity:    entities.RarityUncommon,
			Series:    1,
			BaseStats: entities.Stats{Fixing: 75, Thrift: 65, Patience: 50},
		},
		{
			ID:        "coach_dad_001",
			Name:      "Sideline Steve",
			Archetype: entities.ArchetypeCoach,
			Rarity:    entities.RarityRare,
			Series:    1,
			BaseStats: entities.Stats{Coaching: 85, Wisdom: 60, DadJokes: 45},
		},
		{
			ID:        "fisher_dad_001",
			Name:      "Tackle Box Tom",
			Archetype: entities.ArchetypeFisher,
			Rarity:    entities.RarityEpic,
			Series:    1,
			BaseStats: entities.Stats{Patience: 95, Napping: 80, Wisdom: 70},
		},
		{
			ID:        "gamer_dad_001",
			Name:      "Backseat Gamer Bill",
			Archetype: entities.ArchetypeGamer,
			Rarity:    entities.RarityLegendary,
			Series:    2,
			BaseStats: entities.Stats{DadJokes: 90, Thrift: 85, Grilling: 30},
		},
		{
			ID:        "bbq_dad_777",
			Name:      "Eternal Flame Frank",
			Archetype: entities.ArchetypeBBQ,
			Rarity:    entities.RarityMythic,
			Series:    2,
			BaseStats: entities.Stats{Grilling: 100, Wisdom: 95, Patience: 90},
		},
	}
}

// InstancesOf mints count owned instances of a definition with predictable ids
func InstancesOf(def *entities.CardDefinition, count int) entities.Collection {
	col := make(entities.Collection, 0, count)
	for i := 1; i <= count; i++ {
		col = append(col, entities.NewInstance(
			fmt.Sprintf("%s-inst-%d", def.ID, i),
			def,
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		))
	}
	return col
}
