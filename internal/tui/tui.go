// Package tui is the terminal front end of linkdir built on bubbletea. It
// renders the link forest as an expandable tree and drives every edit
// through service.LinkTreeService.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/linkdir/internal/config"
	"github.com/MKhiriev/linkdir/internal/icons"
	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/internal/service"
	"github.com/MKhiriev/linkdir/models"
)

var ErrNoLinkTree = errors.New("link tree service is not configured")

type TUI struct {
	linkTree service.LinkTreeService
	opts     appOptions
	logger   *logger.Logger
}

func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.LinkTreeService == nil {
		return nil, ErrNoLinkTree
	}
	if cfg == nil {
		cfg = &config.ClientConfig{}
	}

	return &TUI{
		linkTree: services.LinkTreeService,
		opts: appOptions{
			resolver:      icons.NewResolver(icons.DefaultCatalog(), cfg.Icons.FaviconService),
			exportDir:     cfg.Export.Dir,
			statusTimeout: cfg.UI.StatusTimeout,
			buildInfo:     buildInfo,
			storage:       cfg.Storage.DSN,
		},
		logger: log,
	}, nil
}

// Run shows the tree until the user quits or ctx is cancelled. The link tree
// service must already be opened.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.linkTree, t.opts)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal UI stopped with error")
		return err
	}
	return nil
}
