package packs

import (
	"context"
	"time"

	"github.com/dadddeck/deck-bot-discord/internal/clients/dadddeck"
	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
	"github.com/dadddeck/deck-bot-discord/internal/rng"
	"github.com/dadddeck/deck-bot-discord/internal/uuid"
)

// MaxPacksPerGenerate mirrors the catalog API's per-request pack limit
const MaxPacksPerGenerate = 10

// Service defines the pack generation interface
type Service interface {
	// Generate creates count packs of the given type. The final slot of every
	// pack is drawn from a better table, so a standard pack always contains at
	// least one rare-or-better and a premium pack at least one epic-or-better.
	Generate(ctx context.Context, packType entities.PackType, count int) ([]*entities.Pack, error)
}

type service struct {
	client        dadddeck.Client
	roller        rng.Roller
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client        dadddeck.Client
	Roller        rng.Roller     // Optional - defaults to a time-seeded roller
	UUIDGenerator uuid.Generator // Optional - defaults to google uuid
}

// NewService creates a new pack service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, dderr.InvalidArgument("catalog client is required")
	}

	svc := &service{
		client:        cfg.Client,
		roller:        rng.NewRandomRoller(),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}

	if cfg.Roller != nil {
		svc.roller = cfg.Roller
	}
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	}

	return svc, nil
}

// slotWeight is one rung of a rarity table; weights must sum to 1
type slotWeight struct {
	rarity entities.Rarity
	weight float64
}

var standardSlots = []slotWeight{
	{entities.RarityCommon, 0.60},
	{entities.RarityUncommon, 0.25},
	{entities.RarityRare, 0.10},
	{entities.RarityEpic, 0.04},
	{entities.RarityLegendary, 0.009},
	{entities.RarityMythic, 0.001},
}

var standardFinalSlot = []slotWeight{
	{entities.RarityRare, 0.85},
	{entities.RarityEpic, 0.10},
	{entities.RarityLegendary, 0.04},
	{entities.RarityMythic, 0.01},
}

var premiumSlots = []slotWeight{
	{entities.RarityCommon, 0.35},
	{entities.RarityUncommon, 0.35},
	{entities.RarityRare, 0.20},
	{entities.RarityEpic, 0.07},
	{entities.RarityLegendary, 0.025},
	{entities.RarityMythic, 0.005},
}

var premiumFinalSlot = []slotWeight{
	{entities.RarityEpic, 0.85},
	{entities.RarityLegendary, 0.12},
	{entities.RarityMythic, 0.03},
}

// Cards per pack, including the final guaranteed slot
const (
	standardPackSize = 5
	premiumPackSize  = 7
)

// Generate creates count packs of the given type
func (s *service) Generate(ctx context.Context, packType entities.PackType, count int) ([]*entities.Pack, error) {
	if !packType.Valid() {
		return nil, dderr.InvalidArgumentf("unknown pack type '%s'", packType)
	}
	if count < 1 || count > MaxPacksPerGenerate {
		return nil, dderr.InvalidArgumentf("pack count must be between 1 and %d, got %d", MaxPacksPerGenerate, count)
	}

	packs := make([]*entities.Pack, 0, count)
	for i := 0; i < count; i++ {
		pack, err := s.generateOne(ctx, packType)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

func (s *service) generateOne(ctx context.Context, packType entities.PackType) (*entities.Pack, error) {
	size := standardPackSize
	slots, finalSlot := standardSlots, standardFinalSlot
	if packType == entities.PackTypePremium {
		size = premiumPackSize
		slots, finalSlot = premiumSlots, premiumFinalSlot
	}

	now := time.Now().UTC()
	pack := &entities.Pack{
		ID:          s.uuidGenerator.New(),
		Type:        packType,
		Cards:       make([]*entities.CardInstance, 0, size),
		BestRarity:  entities.RarityCommon,
		GeneratedAt: now,
	}

	for slot := 0; slot < size; slot++ {
		table := slots
		if slot == size-1 {
			table = finalSlot
		}
		rarity := s.rollRarity(table)

		defs, err := s.client.RandomCards(ctx, &dadddeck.RandomCardsInput{
			Count:  1,
			Rarity: rarity,
		})
		if err != nil {
			return nil, dderr.Wrapf(err, "failed to fill %s slot", rarity)
		}
		if len(defs) == 0 {
			return nil, dderr.Internalf("catalog returned no cards at tier %s", rarity)
		}

		inst := entities.NewInstance(s.uuidGenerator.New(), defs[0], now)
		pack.Cards = append(pack.Cards, inst)
		if inst.Rarity.AtLeast(pack.BestRarity) {
			pack.BestRarity = inst.Rarity
		}
	}

	return pack, nil
}

// rollRarity draws one sample and walks the cumulative weights. Rounding
// drift in the table falls through to the last rung.
func (s *service) rollRarity(table []slotWeight) entities.Rarity {
	draw := s.roller.Float64()
	cumulative := 0.0
	for _, rung := range table {
		cumulative += rung.weight
		if draw < cumulative {
			return rung.rarity
		}
	}
	return table[len(table)-1].rarity
}
