package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tourbook/internal/ui/tui"
)

type rootOptions struct {
	workspace string
	debug     bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "tourbook",
		Short:        "tourbook: plan, price and keep a catalog of tours",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withWorkspace(cmd, opts, func(ctx context.Context, ws *workspaceCtx) error {
				return tui.Run(ctx, tui.Deps{
					Catalog:       ws.catalog,
					LoadResult:    ws.load,
					WorkspaceRoot: ws.root,
					StorePath:     ws.store.Path(),
					Config:        ws.cfg,
					Logger:        ws.log,
					Debug:         opts.debug,
				})
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .tourbook/logs/tourbook.log")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		addCmd(opts),
		listCmd(opts),
		showCmd(opts),
		deleteCmd(opts),
		queryCmd(opts),
		typesCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
