package packs_test

import (
	"context"
	"testing"

	"github.com/dadddeck/deck-bot-discord/internal/clients/dadddeck"
	mockdadddeck "github.com/dadddeck/deck-bot-discord/internal/clients/dadddeck/mock"
	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
	mockrng "github.com/dadddeck/deck-bot-discord/internal/rng/mock"
	"github.com/dadddeck/deck-bot-discord/internal/services/packs"
	"github.com/dadddeck/deck-bot-discord/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func defAt(rarity entities.Rarity) *entities.CardDefinition {
	return &entities.CardDefinition{
		ID:        "def-" + string(rarity),
		Name:      "Card " + string(rarity),
		Archetype: entities.ArchetypeBBQ,
		Rarity:    rarity,
		BaseStats: entities.Stats{Grilling: 50},
	}
}

func newService(t *testing.T, client dadddeck.Client, roller *mockrng.ScriptedRoller) packs.Service {
	t.Helper()

	svc, err := packs.NewService(&packs.ServiceConfig{
		Client:        client,
		Roller:        roller,
		UUIDGenerator: &uuid.SequentialGenerator{Prefix: "pack"},
	})
	require.NoError(t, err)
	return svc
}

func TestGenerate_StandardPack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockdadddeck.NewMockClient(ctrl)
	client.EXPECT().
		RandomCards(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dadddeck.RandomCardsInput) ([]*entities.CardDefinition, error) {
			return []*entities.CardDefinition{defAt(input.Rarity)}, nil
		}).
		Times(5)

	roller := mockrng.NewScriptedRoller()
	// Four normal slots all land in the common rung; the final slot draw of
	// 0.0 lands in the guaranteed rare rung
	roller.SetFloats([]float64{0.0, 0.3, 0.5, 0.59, 0.0})

	svc := newService(t, client, roller)

	got, err := svc.Generate(context.Background(), entities.PackTypeStandard, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	pack := got[0]
	require.Len(t, pack.Cards, 5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, entities.RarityCommon, pack.Cards[i].Rarity)
	}
	assert.Equal(t, entities.RarityRare, pack.Cards[4].Rarity)
	assert.Equal(t, entities.RarityRare, pack.BestRarity)

	// Fresh instance ids, never the definition id
	seen := make(map[string]bool)
	for _, card := range pack.Cards {
		assert.NotEmpty(t, card.ID)
		assert.False(t, seen[card.ID], "duplicate instance id %s", card.ID)
		seen[card.ID] = true
	}
}

func TestGenerate_StandardFinalSlotIsAlwaysRareOrBetter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockdadddeck.NewMockClient(ctrl)
	client.EXPECT().
		RandomCards(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dadddeck.RandomCardsInput) ([]*entities.CardDefinition, error) {
			return []*entities.CardDefinition{defAt(input.Rarity)}, nil
		}).
		AnyTimes()

	for _, finalDraw := range []float64{0.0, 0.5, 0.849, 0.85, 0.949, 0.95, 0.999} {
		roller := mockrng.NewScriptedRoller()
		roller.SetFloats([]float64{0.0, 0.0, 0.0, 0.0, finalDraw})

		svc := newService(t, client, roller)

		got, err := svc.Generate(context.Background(), entities.PackTypeStandard, 1)
		require.NoError(t, err)

		final := got[0].Cards[4]
		assert.True(t, final.Rarity.AtLeast(entities.RarityRare),
			"final slot draw %v produced %s", finalDraw, final.Rarity)
	}
}

func TestGenerate_PremiumPackSizeAndFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockdadddeck.NewMockClient(ctrl)
	client.EXPECT().
		RandomCards(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dadddeck.RandomCardsInput) ([]*entities.CardDefinition, error) {
			return []*entities.CardDefinition{defAt(input.Rarity)}, nil
		}).
		Times(7)

	roller := mockrng.NewScriptedRoller()
	roller.SetFloats([]float64{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0})

	svc := newService(t, client, roller)

	got, err := svc.Generate(context.Background(), entities.PackTypePremium, 1)
	require.NoError(t, err)

	pack := got[0]
	require.Len(t, pack.Cards, 7)
	assert.True(t, pack.Cards[6].Rarity.AtLeast(entities.RarityEpic))
	assert.True(t, pack.BestRarity.AtLeast(entities.RarityEpic))
}

func TestGenerate_InvalidInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, mockdadddeck.NewMockClient(ctrl), mockrng.NewScriptedRoller())

	_, err := svc.Generate(context.Background(), entities.PackType("mega"), 1)
	assert.True(t, dderr.IsInvalidArgument(err))

	_, err = svc.Generate(context.Background(), entities.PackTypeStandard, 0)
	assert.True(t, dderr.IsInvalidArgument(err))

	_, err = svc.Generate(context.Background(), entities.PackTypeStandard, packs.MaxPacksPerGenerate+1)
	assert.True(t, dderr.IsInvalidArgument(err))
}

func TestGenerate_PropagatesCatalogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockdadddeck.NewMockClient(ctrl)
	client.EXPECT().
		RandomCards(gomock.Any(), gomock.Any()).
		Return(nil, dderr.Internal("catalog down"))

	svc := newService(t, client, mockrng.NewScriptedRoller())

	_, err := svc.Generate(context.Background(), entities.PackTypeStandard, 1)
	require.Error(t, err)
	assert.True(t, dderr.IsInternal(err))
}

func TestNewService_RequiresClient(t *testing.T) {
	_, err := packs.NewService(nil)
	assert.Error(t, err)

	_, err = packs.NewService(&packs.ServiceConfig{})
	assert.Error(t, err)
}
