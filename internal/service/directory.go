package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/godilite/profdir/internal/sheet"
)

const (
	loadTimeout = 30 * time.Second
)

var (
	ErrLoadFailed = errors.New("load failed")
)

// DirectoryService loads the published sheet and turns it into professor aggregates.
type DirectoryService struct {
	source SheetFetcher
	schema Schema
	logger *zap.Logger
	now    func() time.Time
}

// NewDirectoryService creates a new DirectoryService instance.
func NewDirectoryService(source SheetFetcher, schema Schema, logger *zap.Logger) *DirectoryService {
	if source == nil {
		panic("source must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &DirectoryService{
		source: source,
		schema: schema,
		logger: logger.Named("directory"),
		now:    time.Now,
	}
}

// Build runs the full pipeline over raw sheet text.
func Build(text string, schema Schema) *Snapshot {
	records, delimiter := sheet.Decode(text)
	return &Snapshot{
		Records:    records,
		Professors: Aggregate(records, schema),
		Delimiter:  delimiter,
	}
}

// Load fetches the sheet, builds a snapshot and installs it into state.
// On failure state keeps its previous snapshot. Concurrent loads are not
// serialised; the last one to finish wins.
func (s *DirectoryService) Load(ctx context.Context, state *State) (*Snapshot, error) {
	started := s.now()

	fetchCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	text, err := s.source.Fetch(fetchCtx)
	if err != nil {
		s.logger.Error("failed to fetch sheet", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	snap := Build(text, s.schema)
	snap.LoadedAt = s.now()
	state.Replace(snap)

	s.logger.Info("sheet loaded",
		zap.String("delimiter", delimiterName(snap.Delimiter)),
		zap.Int("responses", snap.TotalResponses()),
		zap.Int("professors", snap.TotalProfessors()),
		zap.Duration("elapsed", snap.LoadedAt.Sub(started)))

	return snap, nil
}

func delimiterName(d byte) string {
	if d == sheet.Tab {
		return "tab"
	}
	return "comma"
}
