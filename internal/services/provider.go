package services

import (
	"github.com/dadddeck/deck-bot-discord/internal/clients/dadddeck"
	"github.com/dadddeck/deck-bot-discord/internal/entities"
	"github.com/dadddeck/deck-bot-discord/internal/repositories/collections"
	"github.com/dadddeck/deck-bot-discord/internal/services/advantage"
	collectionService "github.com/dadddeck/deck-bot-discord/internal/services/collection"
	"github.com/dadddeck/deck-bot-discord/internal/services/crafting"
	"github.com/dadddeck/deck-bot-discord/internal/services/packs"
	"github.com/dadddeck/deck-bot-discord/internal/services/upgrade"
)

// Provider holds all service instances
type Provider struct {
	CollectionService collectionService.Service
	UpgradeService    upgrade.Service
	CraftingService   crafting.Service
	PackService       packs.Service
	AdvantageTable    *advantage.Table
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CatalogClient        dadddeck.Client
	CollectionRepository collections.Repository
	Catalog              []*entities.CardDefinition // Snapshot used for craft outputs
	UpgradeConfig        *upgrade.Config            // Optional - defaults per upgrade.DefaultConfig
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	// Use in-memory repository if none provided
	repo := cfg.CollectionRepository
	if repo == nil {
		repo = collections.NewInMemoryRepository()
	}

	upgradeSvc := upgrade.NewService(&upgrade.ServiceConfig{
		Config: cfg.UpgradeConfig,
	})

	craftingSvc := crafting.NewService(&crafting.ServiceConfig{
		Definitions: cfg.Catalog,
	})

	packSvc, err := packs.NewService(&packs.ServiceConfig{
		Client: cfg.CatalogClient,
	})
	if err != nil {
		return nil, err
	}

	collectionSvc, err := collectionService.NewService(&collectionService.ServiceConfig{
		Repository:      repo,
		UpgradeService:  upgradeSvc,
		CraftingService: craftingSvc,
		PackService:     packSvc,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		CollectionService: collectionSvc,
		UpgradeService:    upgradeSvc,
		CraftingService:   craftingSvc,
		PackService:       packSvc,
		AdvantageTable:    advantage.Standard(),
	}, nil
}
