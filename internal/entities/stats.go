package entities

const (
	// StatMin is the lower bound for every stat attribute
	StatMin = 0

	// StatMax is the upper bound for every stat attribute
	StatMax = 100
)

// Stats is the fixed set of eight dad attributes, each bounded to [0, 100].
// Operations saturate at the bounds rather than overflow or error.
type Stats struct {
	Grilling int `json:"grilling"`
	Fixing   int `json:"fixing"`
	DadJokes int `json:"dad_jokes"`
	Coaching int `json:"coaching"`
	Thrift   int `json:"thrift"`
	Napping  int `json:"napping"`
	Wisdom   int `json:"wisdom"`
	Patience int `json:"patience"`
}

// Add returns a copy with n added to every attribute, clamped to the bounds
func (s Stats) Add(n int) Stats {
	return Stats{
		Grilling: clampStat(s.Grilling + n),
		Fixing:   clampStat(s.Fixing + n),
		DadJokes: clampStat(s.DadJokes + n),
		Coaching: clampStat(s.Coaching + n),
		Thrift:   clampStat(s.Thrift + n),
		Napping:  clampStat(s.Napping + n),
		Wisdom:   clampStat(s.Wisdom + n),
		Patience: clampStat(s.Patience + n),
	}
}

// Clamped returns a copy with every attribute forced into [StatMin, StatMax]
func (s Stats) Clamped() Stats {
	return s.Add(0)
}

// InBounds reports whether every attribute already sits within [StatMin, StatMax]
func (s Stats) InBounds() bool {
	return s == s.Clamped()
}

// Total returns the sum of all eight attributes
func (s Stats) Total() int {
	return s.Grilling + s.Fixing + s.DadJokes + s.Coaching +
		s.Thrift + s.Napping + s.Wisdom + s.Patience
}

func clampStat(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}
