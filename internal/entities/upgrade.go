package entities

import (
	"time"
)

// UpgradeEvent records one level gained: the stats before and after, and the
// duplicate instances consumed to pay for it
type UpgradeEvent struct {
	FromLevel   int       `json:"from_level"`
	ToLevel     int       `json:"to_level"`
	ConsumedIDs []string  `json:"consumed_ids"`
	StatsBefore Stats     `json:"stats_before"`
	StatsAfter  Stats     `json:"stats_after"`
	Timestamp   time.Time `json:"timestamp"`
}

// UpgradeRecord tracks the upgrade state of one owned instance. Level is
// monotonically non-decreasing and history holds exactly one event per level
// gained. A record is created on the first successful upgrade and updated in
// place thereafter.
type UpgradeRecord struct {
	InstanceID   string         `json:"instance_id"`
	DefinitionID string         `json:"definition_id"`
	Level        int            `json:"level"`
	History      []UpgradeEvent `json:"history"`
}

// Clone returns a deep copy of the record
func (r *UpgradeRecord) Clone() *UpgradeRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.History = make([]UpgradeEvent, len(r.History))
	for i, ev := range r.History {
		evCopy := ev
		evCopy.ConsumedIDs = append([]string(nil), ev.ConsumedIDs...)
		out.History[i] = evCopy
	}
	return &out
}

// CloneRecords deep-copies an upgrade record map
func CloneRecords(records map[string]*UpgradeRecord) map[string]*UpgradeRecord {
	if records == nil {
		return nil
	}
	out := make(map[string]*UpgradeRecord, len(records))
	for k, v := range records {
		out[k] = v.Clone()
	}
	return out
}
