package advantage_test

import (
	"testing"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
	"github.com/dadddeck/deck-bot-discord/internal/services/advantage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard_IsBalanced(t *testing.T) {
	table := advantage.Standard()

	require.NoError(t, table.Validate())

	for _, archetype := range entities.CoreArchetypes() {
		assert.Len(t, table.AdvantagesOf(archetype), 2, "%s advantages", archetype)
		assert.Len(t, table.DisadvantagesOf(archetype), 2, "%s disadvantages", archetype)
		// 5 core types minus self, 2 advantages, 2 disadvantages
		assert.Empty(t, table.NeutralsOf(archetype), "%s neutrals", archetype)
	}
}

func TestResolve_SelfIsNeutral(t *testing.T) {
	table := advantage.Standard()

	for _, archetype := range entities.CoreArchetypes() {
		assert.Equal(t, advantage.NeutralMultiplier, table.Resolve(archetype, archetype))
	}
}

func TestResolve_AllPairsWithinMultiplierSet(t *testing.T) {
	table := advantage.Standard()
	all := []entities.Archetype{
		entities.ArchetypeBBQ, entities.ArchetypeHandy, entities.ArchetypeCoach,
		entities.ArchetypeFisher, entities.ArchetypeGamer,
		entities.ArchetypeItem, entities.ArchetypeEvent, entities.ArchetypeTerrain,
	}

	for _, attacker := range all {
		for _, defender := range all {
			m := table.Resolve(attacker, defender)
			assert.Contains(t, []float64{
				advantage.DisadvantageMultiplier,
				advantage.NeutralMultiplier,
				advantage.AdvantageMultiplier,
			}, m, "resolve(%s, %s)", attacker, defender)

			// Advantage is one-directional
			if m == advantage.AdvantageMultiplier {
				assert.NotEqual(t, advantage.AdvantageMultiplier, table.Resolve(defender, attacker),
					"resolve(%s, %s) and its inverse both claim advantage", attacker, defender)
			}
		}
	}
}

func TestResolve_AdvantagePair(t *testing.T) {
	// BBQ's beats-set in the standard table is {handy, coach}
	table := advantage.Standard()

	assert.Equal(t, advantage.AdvantageMultiplier,
		table.Resolve(entities.ArchetypeBBQ, entities.ArchetypeHandy))
	assert.Equal(t, advantage.DisadvantageMultiplier,
		table.Resolve(entities.ArchetypeHandy, entities.ArchetypeBBQ))
}

func TestResolve_NonCoreAlwaysNeutral(t *testing.T) {
	table := advantage.Standard()

	for _, special := range []entities.Archetype{entities.ArchetypeItem, entities.ArchetypeEvent, entities.ArchetypeTerrain} {
		for _, core := range entities.CoreArchetypes() {
			assert.Equal(t, advantage.NeutralMultiplier, table.Resolve(special, core))
			assert.Equal(t, advantage.NeutralMultiplier, table.Resolve(core, special))
		}
	}
}

func TestResolve_MutualAdvantagePrefersAttacker(t *testing.T) {
	// Deliberately broken relation: bbq and handy beat each other. Resolve
	// must still prefer the attacker's advantage; Validate must reject it.
	table := advantage.New(map[entities.Archetype][]entities.Archetype{
		entities.ArchetypeBBQ:   {entities.ArchetypeHandy},
		entities.ArchetypeHandy: {entities.ArchetypeBBQ},
	})

	assert.Equal(t, advantage.AdvantageMultiplier,
		table.Resolve(entities.ArchetypeBBQ, entities.ArchetypeHandy))
	assert.Equal(t, advantage.AdvantageMultiplier,
		table.Resolve(entities.ArchetypeHandy, entities.ArchetypeBBQ))
	assert.Error(t, table.Validate())
}

func TestValidate_AggregatesAllViolations(t *testing.T) {
	// Empty relation: every core archetype is short on both sides
	table := advantage.New(map[entities.Archetype][]entities.Archetype{})

	err := table.Validate()
	require.Error(t, err)
	assert.True(t, dderr.IsDataIntegrity(err))

	meta := dderr.GetMeta(err)
	require.Contains(t, meta, "violations")
	violations, ok := meta["violations"].([]advantage.Violation)
	require.True(t, ok)
	assert.Len(t, violations, len(entities.CoreArchetypes()))
}

func TestValidate_RejectsSelfBeat(t *testing.T) {
	relation := map[entities.Archetype][]entities.Archetype{}
	core := entities.CoreArchetypes()
	for i, archetype := range core {
		relation[archetype] = []entities.Archetype{
			core[(i+1)%len(core)],
			core[(i+2)%len(core)],
		}
	}
	// Corrupt one entry to beat itself
	relation[entities.ArchetypeBBQ] = []entities.Archetype{entities.ArchetypeBBQ, entities.ArchetypeHandy}

	err := advantage.New(relation).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beats itself")
}

func TestValidate_RejectsNonCoreInRelation(t *testing.T) {
	relation := map[entities.Archetype][]entities.Archetype{}
	core := entities.CoreArchetypes()
	for i, archetype := range core {
		relation[archetype] = []entities.Archetype{
			core[(i+1)%len(core)],
			core[(i+2)%len(core)],
		}
	}
	relation[entities.ArchetypeItem] = []entities.Archetype{entities.ArchetypeBBQ}

	err := advantage.New(relation).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-core")
}

func TestDerivedQueries_DoNotAliasInternalState(t *testing.T) {
	table := advantage.Standard()

	advantages := table.AdvantagesOf(entities.ArchetypeBBQ)
	require.Len(t, advantages, 2)
	advantages[0] = entities.ArchetypeItem

	assert.Len(t, table.AdvantagesOf(entities.ArchetypeBBQ), 2)
	assert.NotContains(t, table.AdvantagesOf(entities.ArchetypeBBQ), entities.ArchetypeItem)
}
