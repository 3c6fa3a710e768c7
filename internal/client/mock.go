package client

import (
	"context"

	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/stretchr/testify/mock"
)

// MockFetcher is a mock implementation of Fetcher for testing.
//
// Example usage:
//
//	fetcher := new(MockFetcher)
//	fetcher.On("Fetch", mock.Anything, holiday.Criteria{Country: "US", Year: "2024"}).
//	    Return(holiday.Response{Success: true}, nil)
type MockFetcher struct {
	mock.Mock
}

var _ Fetcher = (*MockFetcher)(nil)

// Fetch returns the configured response and error.
func (m *MockFetcher) Fetch(ctx context.Context, criteria holiday.Criteria) (holiday.Response, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(holiday.Response), args.Error(1)
}
