package mocks

import (
	"context"
	"errors"
)

// MockSheetFetcher is a mock implementation of the SheetFetcher interface
// for testing the service layer.
type MockSheetFetcher struct {
	FetchFunc func(ctx context.Context) (string, error)
}

// Fetch implements the SheetFetcher interface
func (m *MockSheetFetcher) Fetch(ctx context.Context) (string, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return "", errors.New("FetchFunc not implemented")
}
