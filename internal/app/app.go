package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/godilite/profdir/internal/config"
	"github.com/godilite/profdir/internal/service"
	"github.com/godilite/profdir/internal/source"
	"github.com/godilite/profdir/internal/view"
	"github.com/godilite/profdir/pkg/httpclient"

	"go.uber.org/zap"
)

type App struct {
	cfg       *config.Config
	logger    *zap.Logger
	directory *service.DirectoryService
	state     *service.State
	renderer  *view.Renderer
}

func NewApp(cfg *config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	client, err := httpclient.New(
		httpclient.WithTimeout(cfg.FetchTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("http client init failed: %w", err)
	}

	sheetSource, err := source.NewSheetSource(cfg.SheetURL, client, logger)
	if err != nil {
		return nil, fmt.Errorf("sheet source init failed: %w", err)
	}
	logger.Info("Sheet source initialized", zap.String("url", cfg.SheetURL))

	sortKey := service.SortKey(cfg.Sort)
	if sortKey != "" && !sortKey.Valid() {
		logger.Warn("unknown sort key, keeping sheet order", zap.String("sort", cfg.Sort))
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		directory: service.NewDirectoryService(sheetSource, service.DefaultSchema(), logger),
		state:     service.NewState(cfg.Search, sortKey),
		renderer:  view.NewRenderer(out, logger),
	}, nil
}

// State exposes the application state for callers that drive the view themselves.
func (a *App) State() *service.State {
	return a.state
}

// Run loads the sheet once and renders the directory. An interrupt cancels
// an in-flight fetch.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("application starting")

	snap, err := a.directory.Load(ctx, a.state)
	if err != nil {
		return err
	}

	page := view.NewPage(snap, a.state.Visible(), a.cfg.FormURL, a.cfg.ReportURL)
	if err := a.renderer.RenderPage(page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	if a.cfg.Detail != "" {
		prof, ok := a.state.Find(a.cfg.Detail)
		if !ok {
			a.logger.Warn("professor not found", zap.String("name", a.cfg.Detail))
		} else if err := a.renderer.RenderDetail(view.NewDetail(prof)); err != nil {
			return fmt.Errorf("render detail: %w", err)
		}
	}

	_ = a.logger.Sync()
	return nil
}
