package model

// Side is the outcome side of a home run prop.
type Side string

const (
	SideYes Side = "yes" // player hits a home run ("Over" in provider terms)
	SideNo  Side = "no"  // player does not ("Under")
)

// Quote is one bookmaker's price for one outcome of one player line.
// Side and Line are carried in the surrounding structure when serialized.
type Quote struct {
	Sportsbook string  `json:"sportsbook"`
	Odds       int     `json:"odds"`
	Side       Side    `json:"-"`
	Line       float64 `json:"-"`
}

// OutcomeConsensus is the consensus price for one outcome side plus the
// contributing per-book quotes in provider response order.
type OutcomeConsensus struct {
	Consensus       int     `json:"consensus"`
	IndividualBooks []Quote `json:"individual_books"`
}

// BookCount returns the number of contributing quotes.
func (oc *OutcomeConsensus) BookCount() int { return len(oc.IndividualBooks) }
