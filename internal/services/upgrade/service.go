package upgrade

import (
	"time"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
)

// Config holds the upgrade economy tunables
type Config struct {
	// MaxLevel is the highest level a card can reach
	MaxLevel int

	// CostPerLevel is how many duplicates one level-up consumes
	CostPerLevel int

	// StatIncreasePerLevel is added to every stat attribute per level gained
	StatIncreasePerLevel int
}

// DefaultConfig returns the shipped economy tuning
func DefaultConfig() *Config {
	return &Config{
		MaxLevel:             10,
		CostPerLevel:         2,
		StatIncreasePerLevel: 5,
	}
}

// Result describes an executed upgrade as a delta. The engine never mutates
// its inputs; the caller applies the delta transactionally.
type Result struct {
	// UpdatedCard is the upgraded instance with its new stats
	UpdatedCard *entities.CardInstance

	// ConsumedInstanceIDs are the duplicates to remove from the collection
	ConsumedInstanceIDs []string

	// Record is the new upgrade record for the upgraded instance
	Record *entities.UpgradeRecord

	// HistoryEntry is the event appended for this level gain
	HistoryEntry entities.UpgradeEvent
}

// Upgradeable reports one definition group eligible for upgrade
type Upgradeable struct {
	DefinitionID   string
	Name           string
	InstanceID     string
	Level          int
	DuplicateCount int
}

// Service defines the upgrade engine interface
type Service interface {
	// CanUpgrade checks eligibility without side effects
	CanUpgrade(instanceID string, collection entities.Collection, records map[string]*entities.UpgradeRecord) error

	// ExecuteUpgrade re-checks eligibility and returns the upgrade delta
	ExecuteUpgrade(instanceID string, collection entities.Collection, records map[string]*entities.UpgradeRecord) (*Result, error)

	// GetUpgradeableCards lists the definition groups that could be upgraded
	// right now; ineligible groups are omitted, not reported
	GetUpgradeableCards(collection entities.Collection, records map[string]*entities.UpgradeRecord) []Upgradeable
}

type service struct {
	cfg *Config
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Config *Config // Optional - defaults to DefaultConfig
}

// NewService creates a new upgrade service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		cfg: DefaultConfig(),
	}

	if cfg != nil && cfg.Config != nil {
		svc.cfg = cfg.Config
	}

	return svc
}

// CanUpgrade checks eligibility without side effects
func (s *service) CanUpgrade(instanceID string, collection entities.Collection, records map[string]*entities.UpgradeRecord) error {
	inst := collection.Find(instanceID)
	if inst == nil {
		return dderr.NotFoundf("card instance '%s' not found in collection", instanceID).
			WithMeta("instance_id", instanceID)
	}

	level := currentLevel(records, instanceID)
	if level >= s.cfg.MaxLevel {
		return dderr.InvalidStatef("card '%s' already at max level %d", inst.Name, s.cfg.MaxLevel).
			WithMeta("instance_id", instanceID).
			WithMeta("level", level)
	}

	dupes := collection.Duplicates(inst.DefinitionID, instanceID)
	if len(dupes) < s.cfg.CostPerLevel {
		return dderr.InsufficientResourcesf("upgrading '%s' needs %d duplicates, have %d",
			inst.Name, s.cfg.CostPerLevel, len(dupes)).
			WithMeta("instance_id", instanceID).
			WithMeta("needed", s.cfg.CostPerLevel).
			WithMeta("have", len(dupes))
	}

	return nil
}

// ExecuteUpgrade re-checks eligibility and returns the upgrade delta
func (s *service) ExecuteUpgrade(instanceID string, collection entities.Collection, records map[string]*entities.UpgradeRecord) (*Result, error) {
	if err := s.CanUpgrade(instanceID, collection, records); err != nil {
		return nil, err
	}

	inst := collection.Find(instanceID)

	// Stable input order, so the same inputs always consume the same instances
	dupes := collection.Duplicates(inst.DefinitionID, instanceID)
	consumed := make([]string, s.cfg.CostPerLevel)
	for i := 0; i < s.cfg.CostPerLevel; i++ {
		consumed[i] = dupes[i].ID
	}

	level := currentLevel(records, instanceID)
	statsBefore := inst.Stats
	statsAfter := statsBefore.Add(s.cfg.StatIncreasePerLevel)

	entry := entities.UpgradeEvent{
		FromLevel:   level,
		ToLevel:     level + 1,
		ConsumedIDs: consumed,
		StatsBefore: statsBefore,
		StatsAfter:  statsAfter,
		Timestamp:   time.Now().UTC(),
	}

	record := records[instanceID].Clone()
	if record == nil {
		record = &entities.UpgradeRecord{
			InstanceID:   instanceID,
			DefinitionID: inst.DefinitionID,
		}
	}
	record.Level = level + 1
	record.History = append(record.History, entry)

	updated := *inst
	updated.Stats = statsAfter

	return &Result{
		UpdatedCard:         &updated,
		ConsumedInstanceIDs: consumed,
		Record:              record,
		HistoryEntry:        entry,
	}, nil
}

// GetUpgradeableCards lists the definition groups that could be upgraded now
func (s *service) GetUpgradeableCards(collection entities.Collection, records map[string]*entities.UpgradeRecord) []Upgradeable {
	var out []Upgradeable

	keys, groups := collection.GroupByDefinition()
	for _, defID := range keys {
		group := groups[defID]

		// One instance is the upgrade target; the rest are fuel
		if len(group) < s.cfg.CostPerLevel+1 {
			continue
		}

		// Target the lowest-level instance so the listing agrees with
		// CanUpgrade even when an earlier instance in the group is maxed
		target := group[0]
		level := currentLevel(records, target.ID)
		for _, inst := range group[1:] {
			if instLevel := currentLevel(records, inst.ID); instLevel < level {
				target, level = inst, instLevel
			}
		}
		if level >= s.cfg.MaxLevel {
			continue
		}

		out = append(out, Upgradeable{
			DefinitionID:   defID,
			Name:           target.Name,
			InstanceID:     target.ID,
			Level:          level,
			DuplicateCount: len(group) - 1,
		})
	}

	return out
}

func currentLevel(records map[string]*entities.UpgradeRecord, instanceID string) int {
	if record, ok := records[instanceID]; ok && record != nil {
		return record.Level
	}
	return 0
}
