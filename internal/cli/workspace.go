package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tourbook/internal/domain"
	"github.com/aalvaropc/tourbook/internal/infra/logger"
	"github.com/aalvaropc/tourbook/internal/infra/tourstore"
	"github.com/aalvaropc/tourbook/internal/infra/workspacefinder"
	"github.com/aalvaropc/tourbook/internal/ports"
	"github.com/aalvaropc/tourbook/internal/usecase"
)

var locator ports.WorkspaceLocator = workspacefinder.NewFinder()

type workspaceCtx struct {
	root string
	cfg  domain.Config

	store   *tourstore.FileStore
	catalog *usecase.Catalog
	load    domain.LoadResult

	log *slog.Logger
}

// withWorkspace resolves the workspace, starts logging, opens the catalog and
// runs fn. A corrupt store is reported on stderr and the catalog starts empty.
func withWorkspace(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, ws *workspaceCtx) error) error {
	root, err := resolveWorkspaceRoot(opts.workspace)
	if err != nil {
		return err
	}

	cleanup, logErr := logger.Setup(logger.Config{Root: root, Debug: opts.debug})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}
	log := logger.L()
	if logErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", logErr)
	} else if opts.debug {
		if err := logger.IsReady(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: debug log unavailable: %v\n", err)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ws, err := openWorkspace(ctx, root, log)
	if err != nil {
		return err
	}
	if ws.load.Status == domain.LoadCorrupt {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s could not be read; starting with an empty catalog (a copy is kept as %s.corrupt on the next save)\n", ws.store.Path(), ws.store.Path())
	}

	return fn(ctx, ws)
}

func openWorkspace(ctx context.Context, root string, log *slog.Logger) (*workspaceCtx, error) {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	format, err := tourstore.ParseFormat(cfg.Store.Format)
	if err != nil {
		return nil, &domain.OpError{Op: "cli.config", Kind: domain.KindInvalidConfig, Err: err}
	}

	store := tourstore.NewFileStore(
		workspacefinder.StorePath(root, cfg),
		tourstore.WithFormat(format),
		tourstore.WithLogger(log),
	)
	catalog := usecase.NewCatalog(store, usecase.WithLogger(log))

	res, err := catalog.Open(ctx)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		store:   store,
		catalog: catalog,
		load:    res,
		log:     log,
	}, nil
}

// resolveWorkspaceRoot prefers the flag, then a tourbook.yaml found upward,
// then the current directory so a first run works without `tourbook init`.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, nil
		}
		return "", err
	}
	return root, nil
}
