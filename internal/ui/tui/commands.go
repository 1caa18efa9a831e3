package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/tourbook/internal/domain"
	"github.com/aalvaropc/tourbook/internal/usecase"
)

// The model sets busy while one of these is in flight, so the catalog is
// never touched from two goroutines at once.

func cmdSaveTour(ctx context.Context, c *usecase.Catalog, t domain.Tour) tea.Cmd {
	return func() tea.Msg {
		err := c.Add(ctx, t)
		return tourSavedMsg{tour: t, index: c.Count(), err: err}
	}
}

func cmdDeleteTour(ctx context.Context, c *usecase.Catalog, index int) tea.Cmd {
	return func() tea.Msg {
		removed, err := c.Delete(ctx, index)
		return tourDeletedMsg{tour: removed, index: index, err: err}
	}
}
