package aggregator

import "fmt"

// SamePlayer reports whether two provider-supplied player names identify the
// same player. Identity is exact-string today; providers are not consistent
// about spellings across books and days, so fuzzy matching may replace this
// one function without touching the aggregator or merge logic.
func SamePlayer(a, b string) bool { return a == b }

// playerKey builds the grouping key for one player at one line value.
func playerKey(name string, line float64) string {
	return fmt.Sprintf("%s_%g", name, line)
}
