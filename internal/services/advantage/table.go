package advantage

import (
	"fmt"
	"strings"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
)

// Damage multipliers returned by Resolve
const (
	AdvantageMultiplier    = 1.2
	DisadvantageMultiplier = 0.8
	NeutralMultiplier      = 1.0
)

// Table is the validated-immutable-after-construction type advantage
// relation: archetype -> the archetypes it beats. The inverse (beaten-by)
// direction is precomputed at construction rather than rescanned per query.
type Table struct {
	beats    map[entities.Archetype][]entities.Archetype
	beatenBy map[entities.Archetype][]entities.Archetype
}

// New builds a table from a beats relation. The relation is copied; the
// caller's map is not retained. Call Validate before trusting the table.
func New(relation map[entities.Archetype][]entities.Archetype) *Table {
	t := &Table{
		beats:    make(map[entities.Archetype][]entities.Archetype, len(relation)),
		beatenBy: make(map[entities.Archetype][]entities.Archetype),
	}
	for archetype, targets := range relation {
		t.beats[archetype] = append([]entities.Archetype(nil), targets...)
	}

	// Inverse index in canonical core order so derived queries are stable
	for _, attacker := range entities.CoreArchetypes() {
		for _, target := range t.beats[attacker] {
			t.beatenBy[target] = append(t.beatenBy[target], attacker)
		}
	}
	return t
}

// Standard returns the shipped relation: each core archetype beats the next
// two in canonical order, giving every core archetype exactly two advantages
// and exactly two disadvantages.
func Standard() *Table {
	core := entities.CoreArchetypes()
	relation := make(map[entities.Archetype][]entities.Archetype, len(core))
	for i, archetype := range core {
		relation[archetype] = []entities.Archetype{
			core[(i+1)%len(core)],
			core[(i+2)%len(core)],
		}
	}
	return New(relation)
}

// Resolve computes the damage multiplier for an attacker/defender pair.
// Advantage takes precedence over disadvantage; a validated table never
// produces both at once.
func (t *Table) Resolve(attacker, defender entities.Archetype) float64 {
	if contains(t.beats[attacker], defender) {
		return AdvantageMultiplier
	}
	if contains(t.beats[defender], attacker) {
		return DisadvantageMultiplier
	}
	return NeutralMultiplier
}

// AdvantagesOf returns the archetypes the given archetype beats
func (t *Table) AdvantagesOf(archetype entities.Archetype) []entities.Archetype {
	return append([]entities.Archetype(nil), t.beats[archetype]...)
}

// DisadvantagesOf returns the archetypes that beat the given archetype
func (t *Table) DisadvantagesOf(archetype entities.Archetype) []entities.Archetype {
	return append([]entities.Archetype(nil), t.beatenBy[archetype]...)
}

// NeutralsOf returns the core archetypes that neither beat nor are beaten by
// the given archetype, excluding itself
func (t *Table) NeutralsOf(archetype entities.Archetype) []entities.Archetype {
	var neutrals []entities.Archetype
	for _, other := range entities.CoreArchetypes() {
		if other == archetype {
			continue
		}
		if contains(t.beats[archetype], other) {
			continue
		}
		if contains(t.beats[other], archetype) {
			continue
		}
		neutrals = append(neutrals, other)
	}
	return neutrals
}

// Violation describes every balance problem found for one archetype
type Violation struct {
	Archetype entities.Archetype
	Problems  []string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Archetype, strings.Join(v.Problems, "; "))
}

// Validate walks the whole relation and aggregates every balance violation
// into a single data integrity error rather than failing on the first.
// Content authoring must fix all of them; this runs once at startup.
func (t *Table) Validate() error {
	var violations []Violation

	for _, archetype := range entities.CoreArchetypes() {
		var problems []string

		advantages := t.beats[archetype]
		if len(advantages) != 2 {
			problems = append(problems, fmt.Sprintf("has %d advantages, want exactly 2", len(advantages)))
		}
		if disadvantages := t.beatenBy[archetype]; len(disadvantages) != 2 {
			problems = append(problems, fmt.Sprintf("has %d disadvantages, want exactly 2", len(disadvantages)))
		}

		for _, target := range advantages {
			if target == archetype {
				problems = append(problems, "beats itself")
				continue
			}
			if !target.IsCore() {
				problems = append(problems, fmt.Sprintf("beats non-core archetype %s", target))
				continue
			}
			if contains(t.beats[target], archetype) {
				problems = append(problems, fmt.Sprintf("mutual advantage with %s", target))
			}
		}

		if len(problems) > 0 {
			violations = append(violations, Violation{Archetype: archetype, Problems: problems})
		}
	}

	// Non-core archetypes must stay out of the relation entirely
	for archetype, targets := range t.beats {
		if !archetype.IsCore() && len(targets) > 0 {
			violations = append(violations, Violation{
				Archetype: archetype,
				Problems:  []string{fmt.Sprintf("non-core archetype has a beats-set of %d", len(targets))},
			})
		}
	}

	if len(violations) == 0 {
		return nil
	}

	summaries := make([]string, len(violations))
	for i, v := range violations {
		summaries[i] = v.String()
	}
	return dderr.DataIntegrityf("type advantage table unbalanced: %s", strings.Join(summaries, " | ")).
		WithMeta("violations", violations)
}

func contains(list []entities.Archetype, target entities.Archetype) bool {
	for _, a := range list {
		if a == target {
			return true
		}
	}
	return false
}
