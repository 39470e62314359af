package game

import (
	"fmt"
)

// Feature indexes one input of the utility function.
type Feature int

const (
	CubesRemainingFeature Feature = iota
	CuredDiseasesFeature
	InfectionRateFeature
	MaxOutbreaksFeature
	PlayerDeckFeature
	UncuredDiseasesFeature
	OutbreaksFeature
	DistanceToInfectionFeature
	NumFeatures
)

var featureNames = [NumFeatures]string{
	"cubes_remaining",
	"cured_diseases",
	"infection_rate",
	"max_outbreaks",
	"player_deck",
	"uncured_diseases",
	"outbreaks",
	"distance_to_infection",
}

func (f Feature) String() string {
	if f < 0 || f >= NumFeatures {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return featureNames[f]
}

// ParseFeature maps a snake_case feature name to its Feature.
func ParseFeature(name string) (Feature, error) {
	for i, n := range featureNames {
		if n == name {
			return Feature(i), nil
		}
	}
	return 0, fmt.Errorf("unknown feature %q", name)
}

// Weights holds one coefficient per feature.
type Weights [NumFeatures]float64

// DefaultWeights returns hand-tuned starting coefficients.
func DefaultWeights() Weights {
	return Weights{
		CubesRemainingFeature:      0.5,
		CuredDiseasesFeature:       25,
		InfectionRateFeature:       -2,
		MaxOutbreaksFeature:        1,
		PlayerDeckFeature:          0.1,
		UncuredDiseasesFeature:     -10,
		OutbreaksFeature:           -5,
		DistanceToInfectionFeature: -1,
	}
}

const (
	// DefaultLearningRate scales every weight update.
	DefaultLearningRate = 0.005
	// NoCubesBonus is added when the board is clean, a proxy for an imminent win.
	NoCubesBonus = 1000.0
	updateScale  = 0.01
)

// Utility is a linear evaluator over board features.
type Utility struct {
	Weights      Weights
	LearningRate float64
}

func NewUtility(weights Weights) Utility {
	return Utility{Weights: weights, LearningRate: DefaultLearningRate}
}

// Features extracts the feature vector of b, measured from the active pawn.
func Features(b Board) [NumFeatures]float64 {
	var x [NumFeatures]float64
	for _, color := range Colors() {
		x[CubesRemainingFeature] += float64(b.graph.CubesRemaining(color))
	}
	x[CuredDiseasesFeature] = float64(len(b.CuredDiseases()))
	x[InfectionRateFeature] = float64(b.rules.CardsToDraw(b.rate))
	x[MaxOutbreaksFeature] = float64(b.rules.MaxOutbreaks())
	x[PlayerDeckFeature] = float64(b.playerDeck.Len())
	x[UncuredDiseasesFeature] = float64(len(b.UncuredDiseases()))
	x[OutbreaksFeature] = float64(b.outbreaks)
	x[DistanceToInfectionFeature] = float64(b.graph.DistanceToInfection(b.locations[b.actor()]))
	return x
}

// Score is the weighted sum of the features, plus NoCubesBonus when no cube
// is left on the board.
func (u Utility) Score(b Board) float64 {
	x := Features(b)
	score := 0.0
	for f, w := range u.Weights {
		score += w * x[f]
	}
	if len(b.graph.InfectedCities()) == 0 {
		score += NoCubesBonus
	}
	return score
}

// Evaluate adapts Score to the Evaluate signature.
func (u Utility) Evaluate(s State) float64 {
	b, ok := s.(Board)
	if !ok {
		panic("unexpected state type")
	}
	return u.Score(b)
}

// UpdateWeights nudges each weight by (predicted - actual) * learning rate *
// feature value * a small scale, against the sign of the error. It is a
// heuristic online correction, not a validated learner.
func (u Utility) UpdateWeights(b Board, weights Weights, predicted, actual float64) Weights {
	x := Features(b)
	diff := predicted - actual
	for f := range weights {
		weights[f] -= diff * u.LearningRate * x[f] * updateScale
	}
	return weights
}
