package entities_test

import (
	"testing"
	"time"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instance(id, defID string) *entities.CardInstance {
	return &entities.CardInstance{
		ID:           id,
		DefinitionID: defID,
		Name:         defID,
		Archetype:    entities.ArchetypeBBQ,
		Rarity:       entities.RarityCommon,
	}
}

func TestCollection_Find(t *testing.T) {
	col := entities.Collection{
		instance("a", "def-1"),
		instance("b", "def-1"),
		instance("c", "def-2"),
	}

	assert.Equal(t, "b", col.Find("b").ID)
	assert.Nil(t, col.Find("missing"))
}

func TestCollection_Duplicates_StableOrder(t *testing.T) {
	col := entities.Collection{
		instance("a", "def-1"),
		instance("b", "def-2"),
		instance("c", "def-1"),
		instance("d", "def-1"),
	}

	dupes := col.Duplicates("def-1", "a")

	require.Len(t, dupes, 2)
	assert.Equal(t, "c", dupes[0].ID)
	assert.Equal(t, "d", dupes[1].ID)
}

func TestCollection_GroupByDefinition_PreservesOrder(t *testing.T) {
	col := entities.Collection{
		instance("a", "def-2"),
		instance("b", "def-1"),
		instance("c", "def-2"),
	}

	keys, groups := col.GroupByDefinition()

	assert.Equal(t, []string{"def-2", "def-1"}, keys)
	require.Len(t, groups["def-2"], 2)
	assert.Equal(t, "a", groups["def-2"][0].ID)
	assert.Equal(t, "c", groups["def-2"][1].ID)
}

func TestCollection_Without(t *testing.T) {
	col := entities.Collection{
		instance("a", "def-1"),
		instance("b", "def-1"),
		instance("c", "def-1"),
	}

	got := col.Without([]string{"b"})

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	// Original untouched
	assert.Len(t, col, 3)
}

func TestCollection_Clone_IsDeep(t *testing.T) {
	col := entities.Collection{instance("a", "def-1")}

	clone := col.Clone()
	clone[0].Name = "changed"

	assert.Equal(t, "def-1", col[0].Name)
}

func TestNewInstance_ClampsBaseStats(t *testing.T) {
	def := &entities.CardDefinition{
		ID:        "def-1",
		Name:      "Grillmaster Gary",
		Archetype: entities.ArchetypeBBQ,
		Rarity:    entities.RarityRare,
		BaseStats: entities.Stats{Grilling: 150, Wisdom: 60},
	}

	inst := entities.NewInstance("inst-1", def, time.Now())

	assert.Equal(t, "def-1", inst.DefinitionID)
	assert.Equal(t, 100, inst.Stats.Grilling)
	assert.Equal(t, 60, inst.Stats.Wisdom)
}
