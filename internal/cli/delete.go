package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func deleteCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:     "delete <number>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved tour by its list number",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withWorkspace(cmd, opts, func(ctx context.Context, ws *workspaceCtx) error {
				removed, err := ws.catalog.Delete(ctx, index)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", removed.Name)
				return nil
			})
		},
	}
	return c
}
