package service

import "context"

// SheetFetcher returns the raw published sheet text.
type SheetFetcher interface {
	Fetch(ctx context.Context) (string, error)
}
