package oddsmath

import (
	"errors"
	"log"

	"HomerunOdds/internal/model"
)

// ErrNoQuotes is returned when a consensus is requested with no usable quotes.
// Callers must omit the outcome entirely rather than ask for an empty consensus.
var ErrNoQuotes = errors.New("no quotes for consensus")

// Consensus reduces the quotes for one outcome side to a single price by
// averaging implied probabilities and converting the mean back to American
// odds. Averaging happens in probability space because odds are not linear
// in probability: averaging -650 and +450 directly would not reflect the
// consensus risk. Quotes with malformed odds are dropped, not fatal.
func Consensus(quotes []model.Quote) (model.OutcomeConsensus, error) {
	if len(quotes) == 0 {
		return model.OutcomeConsensus{}, ErrNoQuotes
	}

	valid := make([]model.Quote, 0, len(quotes))
	sum := 0.0
	for _, q := range quotes {
		p, err := ToProbability(q.Odds)
		if err != nil {
			log.Printf("[WARN] dropping quote from %s: %v", q.Sportsbook, err)
			continue
		}
		valid = append(valid, q)
		sum += p
	}
	if len(valid) == 0 {
		return model.OutcomeConsensus{}, ErrNoQuotes
	}

	// A single book's price is its own consensus; skip the round trip so
	// the odds come back unchanged.
	if len(valid) == 1 {
		return model.OutcomeConsensus{Consensus: valid[0].Odds, IndividualBooks: valid}, nil
	}

	consensus, err := ToAmerican(sum / float64(len(valid)))
	if err != nil {
		return model.OutcomeConsensus{}, err
	}
	return model.OutcomeConsensus{Consensus: consensus, IndividualBooks: valid}, nil
}
