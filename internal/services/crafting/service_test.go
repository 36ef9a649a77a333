package crafting_test

import (
	"testing"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
	mockrng "github.com/dadddeck/deck-bot-discord/internal/rng/mock"
	"github.com/dadddeck/deck-bot-discord/internal/services/crafting"
	"github.com/dadddeck/deck-bot-discord/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epicDef = &entities.CardDefinition{
	ID:        "epic-1",
	Name:      "Thermostat Tyrant",
	Archetype: entities.ArchetypeHandy,
	Rarity:    entities.RarityEpic,
	BaseStats: entities.Stats{Fixing: 80, Thrift: 90},
}

func newService(roller *mockrng.ScriptedRoller) crafting.Service {
	return crafting.NewService(&crafting.ServiceConfig{
		Roller:        roller,
		UUIDGenerator: &uuid.SequentialGenerator{Prefix: "crafted"},
		Definitions:   []*entities.CardDefinition{epicDef},
	})
}

func rareCard(id string) *entities.CardInstance {
	return &entities.CardInstance{
		ID:           id,
		DefinitionID: "rare-def",
		Name:         "Lawn Lord Larry",
		Archetype:    entities.ArchetypeCoach,
		Rarity:       entities.RarityRare,
	}
}

func rareCollection(ids ...string) entities.Collection {
	col := make(entities.Collection, 0, len(ids))
	for _, id := range ids {
		col = append(col, rareCard(id))
	}
	return col
}

func epicRecipe() *entities.Recipe {
	return &entities.Recipe{
		ID:             "craft-epic",
		InputRarity:    entities.RarityRare,
		InputCount:     5,
		OutputRarity:   entities.RarityEpic,
		SuccessRate:    0.6,
		FailReturnRate: 0.4,
	}
}

func TestCanAfford(t *testing.T) {
	svc := newService(mockrng.NewScriptedRoller())
	recipe := epicRecipe()
	cost := recipe.Cost()

	assert.True(t, svc.CanAfford(recipe, cost))
	assert.True(t, svc.CanAfford(recipe, cost+1))
	assert.False(t, svc.CanAfford(recipe, cost-1))
	assert.False(t, svc.CanAfford(nil, 1000000))
}

func TestRollSuccess_GuaranteedConsumesNoEntropy(t *testing.T) {
	roller := mockrng.NewScriptedRoller()
	svc := newService(roller)
	recipe := &entities.Recipe{SuccessRate: 1.0}

	for i := 0; i < 10; i++ {
		assert.True(t, svc.RollSuccess(recipe))
	}
	assert.Equal(t, 0, roller.Draws())
}

func TestRollSuccess_DrawsOnceBelowOne(t *testing.T) {
	roller := mockrng.NewScriptedRoller()
	roller.SetFloats([]float64{0.59, 0.60})
	svc := newService(roller)
	recipe := epicRecipe() // success rate 0.6

	assert.True(t, svc.RollSuccess(recipe))  // 0.59 < 0.6
	assert.False(t, svc.RollSuccess(recipe)) // 0.60 >= 0.6
	assert.Equal(t, 2, roller.Draws())
}

func TestExecute_Success(t *testing.T) {
	roller := mockrng.NewScriptedRoller()
	roller.SetFloats([]float64{0.1})
	svc := newService(roller)

	recipe := epicRecipe()
	selected := []string{"r1", "r2", "r3", "r4", "r5"}
	collection := rareCollection(selected...)

	result, err := svc.Execute(recipe, selected, collection, recipe.Cost())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, selected, result.RemovedInstanceIDs)
	assert.Empty(t, result.ReturnedInstanceIDs)
	assert.Equal(t, recipe.Cost(), result.CurrencySpent)

	require.NotNil(t, result.Output)
	assert.Equal(t, "crafted-1", result.Output.ID)
	assert.Equal(t, entities.RarityEpic, result.Output.Rarity)
	assert.Equal(t, "epic-1", result.Output.DefinitionID)
}

func TestExecute_FailureRefundsFloorOfInputs(t *testing.T) {
	// Recipe {inputCount: 5, successRate: 0.0, failReturnRate: 0.4}:
	// always fails, returns floor(5*0.4) = 2, consumes 3
	roller := mockrng.NewScriptedRoller()
	roller.SetFloats([]float64{0.99, 0.99, 0.99})
	svc := newService(roller)

	recipe := &entities.Recipe{
		ID:             "doomed",
		InputRarity:    entities.RarityRare,
		InputCount:     5,
		OutputRarity:   entities.RarityEpic,
		SuccessRate:    0.0,
		FailReturnRate: 0.4,
	}
	selected := []string{"r1", "r2", "r3", "r4", "r5"}
	collection := rareCollection(selected...)

	for i := 0; i < 3; i++ {
		result, err := svc.Execute(recipe, selected, collection, recipe.Cost())
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.Nil(t, result.Output)
		assert.Equal(t, []string{"r1", "r2"}, result.ReturnedInstanceIDs)
		assert.Equal(t, []string{"r3", "r4", "r5"}, result.RemovedInstanceIDs)
	}
}

func TestExecute_RemovedAndReturnedPartitionSelection(t *testing.T) {
	recipe := epicRecipe()
	selected := []string{"r1", "r2", "r3", "r4", "r5"}
	collection := rareCollection(selected...)

	for _, draw := range []float64{0.0, 0.3, 0.59, 0.6, 0.99} {
		roller := mockrng.NewScriptedRoller()
		roller.SetFloats([]float64{draw})
		svc := newService(roller)

		result, err := svc.Execute(recipe, selected, collection, recipe.Cost())
		require.NoError(t, err)

		combined := make(map[string]int)
		for _, id := range result.RemovedInstanceIDs {
			combined[id]++
		}
		for _, id := range result.ReturnedInstanceIDs {
			combined[id]++
		}

		require.Len(t, combined, len(selected), "draw %v", draw)
		for _, id := range selected {
			assert.Equal(t, 1, combined[id], "draw %v id %s", draw, id)
		}
	}
}

func TestExecute_ValidationFailures(t *testing.T) {
	recipe := epicRecipe()
	collection := rareCollection("r1", "r2", "r3", "r4", "r5")
	enough := recipe.Cost()

	commonCollection := rareCollection("r1", "r2", "r3", "r4")
	commonCollection = append(commonCollection, &entities.CardInstance{
		ID:           "c1",
		DefinitionID: "common-def",
		Name:         "Sock Sandal Sam",
		Rarity:       entities.RarityCommon,
	})

	tests := []struct {
		name       string
		selected   []string
		collection entities.Collection
		currency   int
		wantCode   dderr.Code
	}{
		{
			name:       "wrong cardinality",
			selected:   []string{"r1", "r2"},
			collection: collection,
			currency:   enough,
			wantCode:   dderr.CodeInvalidInput,
		},
		{
			name:       "duplicate selection",
			selected:   []string{"r1", "r1", "r2", "r3", "r4"},
			collection: collection,
			currency:   enough,
			wantCode:   dderr.CodeInvalidInput,
		},
		{
			name:       "missing instance",
			selected:   []string{"r1", "r2", "r3", "r4", "ghost"},
			collection: collection,
			currency:   enough,
			wantCode:   dderr.CodeNotFound,
		},
		{
			name:       "wrong rarity tier",
			selected:   []string{"r1", "r2", "r3", "r4", "c1"},
			collection: commonCollection,
			currency:   enough,
			wantCode:   dderr.CodeInvalidState,
		},
		{
			name:       "insufficient currency",
			selected:   []string{"r1", "r2", "r3", "r4", "r5"},
			collection: collection,
			currency:   enough - 1,
			wantCode:   dderr.CodeInsufficientResources,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockrng.NewScriptedRoller()
			svc := newService(roller)

			result, err := svc.Execute(recipe, tt.selected, tt.collection, tt.currency)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, dderr.GetCode(err))
			// Validation never rolls
			assert.Equal(t, 0, roller.Draws())
		})
	}
}

func TestExecute_ProgrammerErrorInputs(t *testing.T) {
	svc := newService(mockrng.NewScriptedRoller())

	_, err := svc.Execute(nil, nil, nil, 100)
	assert.Equal(t, dderr.CodeInvalidArgument, dderr.GetCode(err))

	_, err = svc.Execute(epicRecipe(), []string{"r1"}, rareCollection("r1"), -5)
	assert.Equal(t, dderr.CodeInvalidArgument, dderr.GetCode(err))
}

func TestExecute_NoCatalogDefinitionAtOutputTier(t *testing.T) {
	roller := mockrng.NewScriptedRoller()
	roller.SetFloats([]float64{0.0})
	svc := crafting.NewService(&crafting.ServiceConfig{
		Roller:        roller,
		UUIDGenerator: &uuid.SequentialGenerator{Prefix: "crafted"},
	})

	recipe := epicRecipe()
	selected := []string{"r1", "r2", "r3", "r4", "r5"}

	_, err := svc.Execute(recipe, selected, rareCollection(selected...), recipe.Cost())
	require.Error(t, err)
	assert.Equal(t, dderr.CodeInternal, dderr.GetCode(err))
}

func TestExecute_NeverMutatesCollection(t *testing.T) {
	roller := mockrng.NewScriptedRoller()
	roller.SetFloats([]float64{0.99})
	svc := newService(roller)

	recipe := epicRecipe()
	selected := []string{"r1", "r2", "r3", "r4", "r5"}
	collection := rareCollection(selected...)
	before := collection.Clone()

	_, err := svc.Execute(recipe, selected, collection, recipe.Cost())
	require.NoError(t, err)

	require.Len(t, collection, len(before))
	for i := range collection {
		assert.Equal(t, *before[i], *collection[i])
	}
}
