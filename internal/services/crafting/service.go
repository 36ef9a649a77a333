package crafting

import (
	"math"
	"time"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
	"github.com/dadddeck/deck-bot-discord/internal/rng"
	"github.com/dadddeck/deck-bot-discord/internal/uuid"
)

// Result describes an executed craft as a delta. RemovedInstanceIDs and
// ReturnedInstanceIDs always partition the original selection: no overlap,
// no omission.
type Result struct {
	// Success reports whether the craft produced the output card
	Success bool

	// RemovedInstanceIDs are the inputs consumed (all of them on success)
	RemovedInstanceIDs []string

	// ReturnedInstanceIDs are the inputs refunded on failure
	ReturnedInstanceIDs []string

	// Output is the freshly minted card on success, nil on failure
	Output *entities.CardInstance

	// CurrencySpent is the recipe cost, charged whether or not the roll succeeds
	CurrencySpent int
}

// Service defines the crafting engine interface
type Service interface {
	// CanAfford checks the currency against the recipe's pure cost
	CanAfford(recipe *entities.Recipe, currency int) bool

	// RollSuccess rolls the recipe's success chance. A success rate of 1.0
	// short-circuits deterministically without consulting the roller.
	RollSuccess(recipe *entities.Recipe) bool

	// Execute validates the selected materials and affordability, charges the
	// cost, rolls, and returns the resulting collection delta
	Execute(recipe *entities.Recipe, selectedIDs []string, collection entities.Collection, currency int) (*Result, error)
}

type service struct {
	roller        rng.Roller
	uuidGenerator uuid.Generator
	definitions   []*entities.CardDefinition
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller        rng.Roller                 // Optional - defaults to a time-seeded roller
	UUIDGenerator uuid.Generator             // Optional - defaults to google uuid
	Definitions   []*entities.CardDefinition // Catalog snapshot used to pick craft outputs
}

// NewService creates a new crafting service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		roller:        rng.NewRandomRoller(),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}

	if cfg != nil {
		if cfg.Roller != nil {
			svc.roller = cfg.Roller
		}
		if cfg.UUIDGenerator != nil {
			svc.uuidGenerator = cfg.UUIDGenerator
		}
		svc.definitions = cfg.Definitions
	}

	return svc
}

// CanAfford checks the currency against the recipe's pure cost
func (s *service) CanAfford(recipe *entities.Recipe, currency int) bool {
	if recipe == nil {
		return false
	}
	return currency >= recipe.Cost()
}

// RollSuccess rolls the recipe's success chance
func (s *service) RollSuccess(recipe *entities.Recipe) bool {
	if recipe.SuccessRate >= 1.0 {
		return true
	}
	return s.roller.Float64() < recipe.SuccessRate
}

// Execute validates, charges, rolls, and returns the craft delta. The
// collection is never mutated; the caller applies the delta.
func (s *service) Execute(recipe *entities.Recipe, selectedIDs []string, collection entities.Collection, currency int) (*Result, error) {
	if recipe == nil {
		return nil, dderr.InvalidArgument("recipe is required")
	}
	if currency < 0 {
		return nil, dderr.InvalidArgumentf("currency cannot be negative, got %d", currency)
	}

	if err := s.validateMaterials(recipe, selectedIDs, collection); err != nil {
		return nil, err
	}

	cost := recipe.Cost()
	if currency < cost {
		return nil, dderr.InsufficientResourcesf("crafting costs %d, have %d", cost, currency).
			WithMeta("cost", cost).
			WithMeta("currency", currency)
	}

	if s.RollSuccess(recipe) {
		output, err := s.mintOutput(recipe)
		if err != nil {
			return nil, err
		}
		return &Result{
			Success:            true,
			RemovedInstanceIDs: append([]string(nil), selectedIDs...),
			Output:             output,
			CurrencySpent:      cost,
		}, nil
	}

	// Refund the first floor(n * failReturnRate) inputs in selection order;
	// the rest are consumed
	returnCount := int(math.Floor(float64(len(selectedIDs)) * recipe.FailReturnRate))
	returned := append([]string(nil), selectedIDs[:returnCount]...)
	removed := append([]string(nil), selectedIDs[returnCount:]...)

	return &Result{
		Success:             false,
		RemovedInstanceIDs:  removed,
		ReturnedInstanceIDs: returned,
		CurrencySpent:       cost,
	}, nil
}

func (s *service) validateMaterials(recipe *entities.Recipe, selectedIDs []string, collection entities.Collection) error {
	if len(selectedIDs) != recipe.InputCount {
		return dderr.InvalidInputf("recipe '%s' requires %d cards, got %d",
			recipe.ID, recipe.InputCount, len(selectedIDs)).
			WithMeta("required", recipe.InputCount).
			WithMeta("selected", len(selectedIDs))
	}

	seen := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		if seen[id] {
			return dderr.InvalidInputf("card instance '%s' selected more than once", id).
				WithMeta("instance_id", id)
		}
		seen[id] = true

		inst := collection.Find(id)
		if inst == nil {
			return dderr.NotFoundf("card instance '%s' not found in collection", id).
				WithMeta("instance_id", id)
		}
		if inst.Rarity != recipe.InputRarity {
			return dderr.InvalidStatef("card '%s' is %s, recipe '%s' needs %s materials",
				inst.Name, inst.Rarity, recipe.ID, recipe.InputRarity).
				WithMeta("instance_id", id).
				WithMeta("rarity", inst.Rarity)
		}
	}

	return nil
}

// mintOutput creates one new instance at the recipe's output tier, picked
// uniformly from the catalog snapshot
func (s *service) mintOutput(recipe *entities.Recipe) (*entities.CardInstance, error) {
	var candidates []*entities.CardDefinition
	for _, def := range s.definitions {
		if def.Rarity == recipe.OutputRarity {
			candidates = append(candidates, def)
		}
	}
	if len(candidates) == 0 {
		return nil, dderr.Internalf("no catalog definitions at tier %s", recipe.OutputRarity).
			WithMeta("output_rarity", recipe.OutputRarity)
	}

	def := candidates[0]
	if len(candidates) > 1 {
		def = candidates[s.roller.Intn(len(candidates))]
	}

	return entities.NewInstance(s.uuidGenerator.New(), def, time.Now().UTC()), nil
}
