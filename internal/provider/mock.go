package provider

import (
	"context"
	"time"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Games []RawGame
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchEvents(_ context.Context, _ time.Time) ([]RawGame, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Games, nil
}
