package game

type StandardRules struct {
	EpidemicCards    int
	MaxOutbreakCount int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		EpidemicCards:    5,
		MaxOutbreakCount: 7,
	}
}

func (sr *StandardRules) Epidemics() int {
	return sr.EpidemicCards
}

// MaxOutbreaks is the last survivable outbreak count; one more loses.
func (sr *StandardRules) MaxOutbreaks() int {
	return sr.MaxOutbreakCount
}

// CardsToDraw follows the infection rate track: 2 at levels 1-3, 3 at 4-5, 4 at 6-7.
func (sr *StandardRules) CardsToDraw(rate InfectionRate) int {
	switch {
	case rate <= 3:
		return 2
	case rate <= 5:
		return 3
	default:
		return 4
	}
}

// CureThreshold is the number of same-colour cards needed to cure.
func (sr *StandardRules) CureThreshold(p Pawn) int {
	if p.Role == Scientist {
		return 4
	}
	return 5
}
