package entities

// Archetype is the thematic category printed on a card. Core archetypes
// participate in combat advantage; special categories are always neutral.
type Archetype string

const (
	ArchetypeBBQ     Archetype = "bbq"
	ArchetypeHandy   Archetype = "handy"
	ArchetypeCoach   Archetype = "coach"
	ArchetypeFisher  Archetype = "fisher"
	ArchetypeGamer   Archetype = "gamer"
	ArchetypeItem    Archetype = "item"
	ArchetypeEvent   Archetype = "event"
	ArchetypeTerrain Archetype = "terrain"
)

// coreArchetypes is the closed set of combat-eligible archetypes, in
// canonical order. Derived queries iterate this order so results are stable.
var coreArchetypes = []Archetype{
	ArchetypeBBQ,
	ArchetypeHandy,
	ArchetypeCoach,
	ArchetypeFisher,
	ArchetypeGamer,
}

// CoreArchetypes returns the combat-eligible archetypes in canonical order
func CoreArchetypes() []Archetype {
	out := make([]Archetype, len(coreArchetypes))
	copy(out, coreArchetypes)
	return out
}

// IsCore reports whether the archetype participates in combat advantage
func (a Archetype) IsCore() bool {
	for _, c := range coreArchetypes {
		if a == c {
			return true
		}
	}
	return false
}

// Valid reports whether the archetype is a member of the closed set
func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeBBQ, ArchetypeHandy, ArchetypeCoach, ArchetypeFisher,
		ArchetypeGamer, ArchetypeItem, ArchetypeEvent, ArchetypeTerrain:
		return true
	}
	return false
}
