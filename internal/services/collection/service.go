package collection

import (
	"context"
	"sort"
	"time"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
	"github.com/dadddeck/deck-bot-discord/internal/repositories/collections"
	"github.com/dadddeck/deck-bot-discord/internal/services/crafting"
	"github.com/dadddeck/deck-bot-discord/internal/services/packs"
	"github.com/dadddeck/deck-bot-discord/internal/services/upgrade"
)

// Economy constants for operations that touch currency
const (
	// StartingCurrency is granted when a player's collection is first created
	StartingCurrency = 500

	// Pack prices by type
	StandardPackCost = 100
	PremiumPackCost  = 250
)

// OpenPackResult is the pack plus the resulting balance
type OpenPackResult struct {
	Pack     *entities.Pack
	Currency int
}

// LeaderboardEntry is one ranked row: an owner and their collection's
// combined card power
type LeaderboardEntry struct {
	OwnerID    string
	CardCount  int
	TotalPower int
	BestRarity entities.Rarity
}

// Service orchestrates the pure engines against persisted player state. The
// engines return deltas; this layer loads, applies, and writes back under the
// repository's optimistic versioning.
type Service interface {
	// GetOrCreate returns the owner's collection, creating an empty one with
	// starting currency on first contact
	GetOrCreate(ctx context.Context, ownerID string) (*entities.PlayerCollection, error)

	// OpenPack charges the pack price, generates one pack, and adds its cards
	// to the owner's collection
	OpenPack(ctx context.Context, ownerID string, packType entities.PackType) (*OpenPackResult, error)

	// UpgradeCard levels up an instance by consuming duplicates
	UpgradeCard(ctx context.Context, ownerID, instanceID string) (*upgrade.Result, error)

	// CraftCards runs a recipe over the selected instances
	CraftCards(ctx context.Context, ownerID, recipeID string, selectedIDs []string) (*crafting.Result, error)

	// ListUpgradeable reports which of the owner's cards could be upgraded now
	ListUpgradeable(ctx context.Context, ownerID string) ([]upgrade.Upgradeable, error)

	// Leaderboard ranks the given owners by total card power, best first
	Leaderboard(ctx context.Context, ownerIDs []string) ([]LeaderboardEntry, error)

	// ListRecipes returns the recipe catalog
	ListRecipes() map[string]*entities.Recipe
}

type service struct {
	repo     collections.Repository
	upgrade  upgrade.Service
	crafting crafting.Service
	packs    packs.Service
	recipes  map[string]*entities.Recipe
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository      collections.Repository
	UpgradeService  upgrade.Service
	CraftingService crafting.Service
	PackService     packs.Service
	Recipes         map[string]*entities.Recipe // Optional - defaults to StandardRecipes
}

// NewService creates a new collection service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, dderr.InvalidArgument("config is required")
	}
	if cfg.Repository == nil {
		return nil, dderr.InvalidArgument("repository is required")
	}
	if cfg.UpgradeService == nil {
		return nil, dderr.InvalidArgument("upgrade service is required")
	}
	if cfg.CraftingService == nil {
		return nil, dderr.InvalidArgument("crafting service is required")
	}
	if cfg.PackService == nil {
		return nil, dderr.InvalidArgument("pack service is required")
	}

	svc := &service{
		repo:     cfg.Repository,
		upgrade:  cfg.UpgradeService,
		crafting: cfg.CraftingService,
		packs:    cfg.PackService,
		recipes:  cfg.Recipes,
	}
	if svc.recipes == nil {
		svc.recipes = entities.StandardRecipes()
	}

	return svc, nil
}

// GetOrCreate returns the owner's collection, creating one on first contact
func (s *service) GetOrCreate(ctx context.Context, ownerID string) (*entities.PlayerCollection, error) {
	if ownerID == "" {
		return nil, dderr.InvalidArgument("owner ID is required")
	}

	pc, err := s.repo.Get(ctx, ownerID)
	if err == nil {
		return pc, nil
	}
	if !dderr.IsNotFound(err) {
		return nil, err
	}

	pc = entities.NewPlayerCollection(ownerID, time.Now().UTC())
	pc.Currency = StartingCurrency

	if err := s.repo.Create(ctx, pc); err != nil {
		// Lost the creation race, someone else's collection wins
		if dderr.GetCode(err) == dderr.CodeAlreadyExists {
			return s.repo.Get(ctx, ownerID)
		}
		return nil, err
	}
	return pc, nil
}

// PackCost returns the price of a pack type
func PackCost(packType entities.PackType) int {
	if packType == entities.PackTypePremium {
		return PremiumPackCost
	}
	return StandardPackCost
}

// OpenPack charges the pack price and adds the generated cards
func (s *service) OpenPack(ctx context.Context, ownerID string, packType entities.PackType) (*OpenPackResult, error) {
	if !packType.Valid() {
		return nil, dderr.InvalidArgumentf("unknown pack type '%s'", packType)
	}

	var result *OpenPackResult
	err := s.mutate(ctx, ownerID, func(pc *entities.PlayerCollection) error {
		cost := PackCost(packType)
		if pc.Currency < cost {
			return dderr.InsufficientResourcesf("a %s pack costs %d, have %d", packType, cost, pc.Currency).
				WithMeta("cost", cost).
				WithMeta("currency", pc.Currency)
		}

		generated, err := s.packs.Generate(ctx, packType, 1)
		if err != nil {
			return err
		}
		pack := generated[0]

		pc.Currency -= cost
		pc.Cards = append(pc.Cards, pack.Cards...)

		result = &OpenPackResult{Pack: pack, Currency: pc.Currency}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpgradeCard levels up an instance by consuming duplicates
func (s *service) UpgradeCard(ctx context.Context, ownerID, instanceID string) (*upgrade.Result, error) {
	if instanceID == "" {
		return nil, dderr.InvalidArgument("instance ID is required")
	}

	var result *upgrade.Result
	err := s.mutate(ctx, ownerID, func(pc *entities.PlayerCollection) error {
		res, err := s.upgrade.ExecuteUpgrade(instanceID, pc.Cards, pc.UpgradeRecords)
		if err != nil {
			return err
		}

		pc.Cards = pc.Cards.Without(res.ConsumedInstanceIDs)
		for i, inst := range pc.Cards {
			if inst.ID == instanceID {
				pc.Cards[i] = res.UpdatedCard
				break
			}
		}
		if pc.UpgradeRecords == nil {
			pc.UpgradeRecords = make(map[string]*entities.UpgradeRecord)
		}
		// Consumed duplicates may carry records of their own; they leave
		// with the cards
		for _, id := range res.ConsumedInstanceIDs {
			delete(pc.UpgradeRecords, id)
		}
		pc.UpgradeRecords[instanceID] = res.Record

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CraftCards runs a recipe over the selected instances
func (s *service) CraftCards(ctx context.Context, ownerID, recipeID string, selectedIDs []string) (*crafting.Result, error) {
	recipe, ok := s.recipes[recipeID]
	if !ok {
		return nil, dderr.NotFoundf("recipe '%s' not found", recipeID).
			WithMeta("recipe_id", recipeID)
	}

	var result *crafting.Result
	err := s.mutate(ctx, ownerID, func(pc *entities.PlayerCollection) error {
		res, err := s.crafting.Execute(recipe, selectedIDs, pc.Cards, pc.Currency)
		if err != nil {
			return err
		}

		pc.Currency -= res.CurrencySpent
		pc.Cards = pc.Cards.Without(res.RemovedInstanceIDs)
		for _, id := range res.RemovedInstanceIDs {
			delete(pc.UpgradeRecords, id)
		}
		if res.Output != nil {
			pc.Cards = append(pc.Cards, res.Output)
		}

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListUpgradeable reports which of the owner's cards could be upgraded now
func (s *service) ListUpgradeable(ctx context.Context, ownerID string) ([]upgrade.Upgradeable, error) {
	pc, err := s.GetOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.upgrade.GetUpgradeableCards(pc.Cards, pc.UpgradeRecords), nil
}

// ListRecipes returns the recipe catalog
func (s *service) ListRecipes() map[string]*entities.Recipe {
	return s.recipes
}

// Leaderboard ranks the given owners by total card power, best first.
// Owners without a collection fail the whole call with not-found so the
// caller can name the player who has not started collecting.
func (s *service) Leaderboard(ctx context.Context, ownerIDs []string) ([]LeaderboardEntry, error) {
	if len(ownerIDs) == 0 {
		return nil, dderr.InvalidArgument("at least one owner is required")
	}

	seen := make(map[string]bool, len(ownerIDs))
	unique := make([]string, 0, len(ownerIDs))
	for _, id := range ownerIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	cols, err := s.repo.GetByOwners(ctx, unique)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(cols))
	for i, pc := range cols {
		entry := LeaderboardEntry{
			OwnerID:    pc.OwnerID,
			CardCount:  len(pc.Cards),
			BestRarity: entities.RarityCommon,
		}
		for _, inst := range pc.Cards {
			entry.TotalPower += inst.Stats.Total()
			if inst.Rarity.AtLeast(entry.BestRarity) {
				entry.BestRarity = inst.Rarity
			}
		}
		entries[i] = entry
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPower > entries[j].TotalPower
	})
	return entries, nil
}

// mutate loads the owner's collection, applies fn, and writes it back. A
// version conflict from a concurrent writer gets one reload-and-retry; the
// engines are pure so recomputing over fresh state is safe.
func (s *service) mutate(ctx context.Context, ownerID string, fn func(*entities.PlayerCollection) error) error {
	const attempts = 2

	var err error
	for i := 0; i < attempts; i++ {
		var pc *entities.PlayerCollection
		pc, err = s.GetOrCreate(ctx, ownerID)
		if err != nil {
			return err
		}

		if err = fn(pc); err != nil {
			return err
		}

		err = s.repo.Update(ctx, pc)
		if err == nil {
			return nil
		}
		if !dderr.IsConflict(err) {
			return err
		}
	}
	return err
}
