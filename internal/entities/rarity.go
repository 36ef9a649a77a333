package entities

// Rarity is the tier classification gating crafting recipe inputs and outputs
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

var rarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

// Rarities returns all rarities from lowest to highest tier
func Rarities() []Rarity {
	out := make([]Rarity, len(rarityOrder))
	copy(out, rarityOrder)
	return out
}

// Index returns the tier position of the rarity, lowest first, or -1 when unknown
func (r Rarity) Index() int {
	for i, v := range rarityOrder {
		if r == v {
			return i
		}
	}
	return -1
}

// Valid reports whether the rarity is a known tier
func (r Rarity) Valid() bool {
	return r.Index() >= 0
}

// AtLeast reports whether the rarity is the given tier or higher
func (r Rarity) AtLeast(other Rarity) bool {
	return r.Index() >= other.Index()
}
