package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tourbook/internal/domain"
)

func listCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List saved tours",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withWorkspace(cmd, opts, func(_ context.Context, ws *workspaceCtx) error {
				return printTours(cmd.OutOrStdout(), ws.catalog.List(), ws.cfg, format)
			})
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func showCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show <number>",
		Short: "Show one saved tour by its list number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withWorkspace(cmd, opts, func(_ context.Context, ws *workspaceCtx) error {
				tour, err := ws.catalog.Get(index)
				if err != nil {
					return err
				}
				return printTourDetail(cmd.OutOrStdout(), index, tour, ws.cfg, format)
			})
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &domain.ValidationError{Field: "number", Reason: domain.ReasonNotAnInteger, Input: s}
	}
	return n, nil
}
