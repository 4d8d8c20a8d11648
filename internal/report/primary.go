package report

import (
	"HomerunOdds/internal/model"
)

// PrimaryLines reduces the snapshot to the most commonly offered line per
// player, weighted by how many sportsbooks quote each line. Books mostly
// agree on 0.5 but a few post alternate lines; the primary line is the
// one worth showing in a compact summary.
func PrimaryLines(snap *model.DailySnapshot) *model.DailySnapshot {
	// line -> weight, accumulated across every game the player appears in
	weights := map[string]map[float64]int{}
	for _, g := range snap.Games {
		for _, p := range g.Players {
			byLine := weights[p.PlayerName]
			if byLine == nil {
				byLine = map[float64]int{}
				weights[p.PlayerName] = byLine
			}
			byLine[p.Line] += p.SportsbookCount
		}
	}

	out := &model.DailySnapshot{Date: snap.Date, GeneratedAt: snap.GeneratedAt}
	for _, g := range snap.Games {
		slim := g
		slim.Players = nil
		seen := map[string]bool{}
		for _, p := range g.Players {
			if seen[p.PlayerName] {
				continue
			}
			if p.Line != primaryLine(weights[p.PlayerName]) {
				continue
			}
			slim.Players = append(slim.Players, p)
			seen[p.PlayerName] = true
		}
		if len(slim.Players) > 0 {
			out.Games = append(out.Games, slim)
		}
	}
	return out
}

func primaryLine(byLine map[float64]int) float64 {
	var best float64
	bestWeight := -1
	for line, w := range byLine {
		if w > bestWeight || (w == bestWeight && line < best) {
			best = line
			bestWeight = w
		}
	}
	return best
}
