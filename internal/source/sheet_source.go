package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	ErrEmptyURL         = errors.New("sheet url is empty")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// SheetSource fetches the published sheet export over HTTP.
type SheetSource struct {
	url     string
	client  *http.Client
	logger  *zap.Logger
	sfGroup singleflight.Group
}

func NewSheetSource(url string, client *http.Client, logger *zap.Logger) (*SheetSource, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetSource{
		url:    url,
		client: client,
		logger: logger.Named("sheet-source"),
	}, nil
}

// Fetch returns the body of the sheet export. Concurrent calls share one request.
func (s *SheetSource) Fetch(ctx context.Context) (string, error) {
	v, err, shared := s.sfGroup.Do(s.url, func() (any, error) {
		return s.get(ctx)
	})
	if err != nil {
		return "", err
	}
	if shared {
		s.logger.Debug("singleflight shared result", zap.String("url", s.url))
	}
	return v.(string), nil
}

func (s *SheetSource) get(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: HTTP %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sheet body: %w", err)
	}

	s.logger.Debug("sheet fetched",
		zap.String("url", s.url),
		zap.Int("bytes", len(body)))

	return string(body), nil
}
