package tui

import (
	"log/slog"

	"github.com/aalvaropc/tourbook/internal/domain"
	"github.com/aalvaropc/tourbook/internal/usecase"
)

type Deps struct {
	Catalog    *usecase.Catalog
	LoadResult domain.LoadResult

	WorkspaceRoot string
	StorePath     string
	Config        domain.Config

	Logger *slog.Logger
	Debug  bool
}
