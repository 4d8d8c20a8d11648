package report

import (
	"fmt"
	"strings"

	"HomerunOdds/internal/model"
)

// FormatOdds renders American odds with an explicit sign, the convention
// bettors expect (+450, -650).
func FormatOdds(odds int) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return fmt.Sprintf("%d", odds)
}

// FormatCycleReport formats a short per-cycle status message for the
// notifier.
func FormatCycleReport(snap *model.DailySnapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("⚾ <b>Home Run Props</b> | %s\n\n", snap.Date))

	total := 0
	for _, g := range snap.Games {
		total += len(g.Players)
	}
	live := snap.CountByStatus(model.StatusLive)
	cached := snap.CountByStatus(model.StatusCached)

	b.WriteString(fmt.Sprintf("Games: %d (%d live, %d cached)\n", len(snap.Games), live, cached))
	b.WriteString(fmt.Sprintf("Players with odds: %d\n", total))
	b.WriteString(fmt.Sprintf("Generated: %s\n", snap.GeneratedAt.Format("3:04 PM MST")))
	if cached > 0 {
		b.WriteString("\n💾 Cached games keep their last pre-start odds until midnight.\n")
	}
	return b.String()
}

// FormatGames renders the full console summary, one block per game.
func FormatGames(snap *model.DailySnapshot) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString(fmt.Sprintf("⚾ MLB Home Run Props | %s\n", snap.Date))
	b.WriteString(strings.Repeat("=", 60) + "\n")

	if len(snap.Games) == 0 {
		b.WriteString("\nNo home run props available today.\n")
		return b.String()
	}

	for _, g := range snap.Games {
		tag := ""
		if g.Status == model.StatusCached {
			tag = fmt.Sprintf(" [CACHED %s]", g.LastUpdated.Format("3:04 PM"))
		}
		b.WriteString(fmt.Sprintf("\n🏟  %s @ %s%s\n", g.AwayTeam, g.HomeTeam, tag))
		b.WriteString(fmt.Sprintf("    %s\n", g.CommenceTime.Format("3:04 PM MST")))

		for _, p := range g.Players {
			b.WriteString(fmt.Sprintf("    %s (%s)\n", p.PlayerName, p.LineDisplay))
			switch {
			case p.OverOdds != nil && p.UnderOdds != nil:
				b.WriteString(fmt.Sprintf("        Yes: %s | No: %s (%d books)\n",
					FormatOdds(p.OverOdds.Consensus), FormatOdds(p.UnderOdds.Consensus), p.SportsbookCount))
			case p.OverOdds != nil:
				b.WriteString(fmt.Sprintf("        Yes: %s (%d books)\n",
					FormatOdds(p.OverOdds.Consensus), p.SportsbookCount))
			case p.UnderOdds != nil:
				b.WriteString(fmt.Sprintf("        No: %s (%d books)\n",
					FormatOdds(p.UnderOdds.Consensus), p.SportsbookCount))
			}
		}
	}
	return b.String()
}
