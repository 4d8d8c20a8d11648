package oddsmath

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOdds is returned for values that are not valid American odds
// (zero, or inside the open interval -100..100).
var ErrInvalidOdds = errors.New("invalid american odds")

// ErrInvalidProbability is returned for probabilities outside (0, 1).
var ErrInvalidProbability = errors.New("invalid probability")

// ToProbability converts American odds to implied probability.
// +150 → 0.40, -200 → 0.6667.
func ToProbability(american int) (float64, error) {
	if american > -100 && american < 100 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOdds, american)
	}
	if american >= 100 {
		return 100.0 / (float64(american) + 100.0), nil
	}
	return float64(-american) / (float64(-american) + 100.0), nil
}

// ToAmerican converts implied probability back to American odds.
// Favorites (p >= 0.5) map to negative odds, underdogs to positive.
func ToAmerican(probability float64) (int, error) {
	if probability <= 0 || probability >= 1 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidProbability, probability)
	}
	if probability >= 0.5 {
		return int(math.Round(-100.0 * probability / (1.0 - probability))), nil
	}
	return int(math.Round(100.0 * (1.0 - probability) / probability)), nil
}
