package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"HomerunOdds/internal/model"
)

// Exporter writes the public feed files consumed by the static site.
type Exporter struct {
	Dir          string
	Sport        string
	Market       string
	TimezoneName string
}

// NewExporter creates an exporter writing under dir (the api/v1 root).
func NewExporter(dir, sport, market, timezoneName string) *Exporter {
	return &Exporter{Dir: dir, Sport: sport, Market: market, TimezoneName: timezoneName}
}

// WriteAll renders every feed format from the merged snapshot. Feeds are
// compact JSON; they are served statically with no further processing.
func (e *Exporter) WriteAll(snap *model.DailySnapshot) error {
	feeds := map[string]any{
		"homerun-props.json": e.BuildFull(snap),
		"summary.json":       e.BuildSummary(snap),
		"players.json":       e.BuildPlayers(snap),
		"best-odds.json":     e.BuildBestOdds(snap),
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	for name, feed := range feeds {
		data, err := json.Marshal(feed)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		path := filepath.Join(e.Dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		log.Printf("[INFO] exported %s (%.1f KB)", name, float64(len(data))/1024)
	}
	return nil
}
