package entities

// Recipe transforms a set of same-tier input cards into one card of a higher
// tier. A SuccessRate of 1.0 is an explicit deterministic short-circuit: no
// randomness is consulted.
type Recipe struct {
	ID             string  `json:"id"`
	InputRarity    Rarity  `json:"input_rarity"`
	InputCount     int     `json:"input_count"`
	OutputRarity   Rarity  `json:"output_rarity"`
	SuccessRate    float64 `json:"success_rate"`
	FailReturnRate float64 `json:"fail_return_rate"`
}

// craftBaseCost is the currency cost per input card per tier jumped
const craftBaseCost = 25

// Cost returns the currency cost of the recipe. Pure and recipe-only:
// monotonic in both the required input count and the tier spread.
func (r *Recipe) Cost() int {
	spread := r.OutputRarity.Index() - r.InputRarity.Index()
	if spread < 1 {
		spread = 1
	}
	return craftBaseCost * r.InputCount * spread
}

// StandardRecipes returns the default recipe catalog: one recipe per adjacent
// tier jump, riskier and cheaper-per-card at the low end, safer and pricier
// toward mythic.
func StandardRecipes() map[string]*Recipe {
	recipes := []*Recipe{
		{
			ID:             "craft-uncommon",
			InputRarity:    RarityCommon,
			InputCount:     5,
			OutputRarity:   RarityUncommon,
			SuccessRate:    1.0,
			FailReturnRate: 0,
		},
		{
			ID:             "craft-rare",
			InputRarity:    RarityUncommon,
			InputCount:     5,
			OutputRarity:   RarityRare,
			SuccessRate:    0.8,
			FailReturnRate: 0.4,
		},
		{
			ID:             "craft-epic",
			InputRarity:    RarityRare,
			InputCount:     5,
			OutputRarity:   RarityEpic,
			SuccessRate:    0.6,
			FailReturnRate: 0.4,
		},
		{
			ID:             "craft-legendary",
			InputRarity:    RarityEpic,
			InputCount:     4,
			OutputRarity:   RarityLegendary,
			SuccessRate:    0.5,
			FailReturnRate: 0.5,
		},
		{
			ID:             "craft-mythic",
			InputRarity:    RarityLegendary,
			InputCount:     3,
			OutputRarity:   RarityMythic,
			SuccessRate:    0.4,
			FailReturnRate: 0.5,
		},
	}

	out := make(map[string]*Recipe, len(recipes))
	for _, r := range recipes {
		out[r.ID] = r
	}
	return out
}
