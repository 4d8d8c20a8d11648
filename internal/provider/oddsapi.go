package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// OddsAPIFetcher implements Fetcher against The Odds API v4.
type OddsAPIFetcher struct {
	BaseURL string
	APIKey  string
	Sport   string
	Markets string
	Regions string
	Client  *http.Client
}

// NewOddsAPIFetcher creates a fetcher for one sport/market combination.
func NewOddsAPIFetcher(baseURL, apiKey, sport, markets, regions string) *OddsAPIFetcher {
	return &OddsAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Sport:   sport,
		Markets: markets,
		Regions: regions,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *OddsAPIFetcher) Name() string { return "the-odds-api" }

// FetchEvents fetches all games commencing on the given calendar day,
// with per-bookmaker prices for the configured market.
func (f *OddsAPIFetcher) FetchEvents(ctx context.Context, day time.Time) ([]RawGame, error) {
	dateStr := day.Format("2006-01-02")
	params := url.Values{}
	params.Set("apiKey", f.APIKey)
	params.Set("regions", f.Regions)
	params.Set("markets", f.Markets)
	params.Set("oddsFormat", "american")
	params.Set("dateFormat", "iso")
	params.Set("commenceTimeFrom", dateStr+"T00:00:00Z")
	params.Set("commenceTimeTo", dateStr+"T23:59:59Z")

	endpoint := fmt.Sprintf("%s/sports/%s/odds/?%s", f.BaseURL, f.Sport, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch events: status %d, body: %s", resp.StatusCode, string(body))
	}

	var games []RawGame
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return games, nil
}
