package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tourbook/internal/domain"
	"github.com/aalvaropc/tourbook/internal/infra/tourquery"
)

func queryCmd(opts *rootOptions) *cobra.Command {
	var selectRows bool

	c := &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Evaluate a JSONPath expression over saved tours",
		Long: `Evaluate a JSONPath expression over the catalog, seen as a JSON array of
{index, id, type, name, duration, stops, in_hours, cost} objects.

Examples:
  tourbook query '$[*].name'
  tourbook query --select '$[?(@.cost > 300)]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(cmd, opts, func(_ context.Context, ws *workspaceCtx) error {
				tours := ws.catalog.List()
				out := cmd.OutOrStdout()

				if selectRows {
					idx, err := tourquery.Select(tours, args[0])
					if err != nil {
						return err
					}
					picked := make([]domain.Tour, 0, len(idx))
					for _, i := range idx {
						t, err := ws.catalog.Get(i)
						if err != nil {
							return err
						}
						picked = append(picked, t)
					}
					return printSelected(out, idx, picked, ws.cfg)
				}

				val, err := tourquery.Query(tours, args[0])
				if err != nil {
					return err
				}
				s, err := tourquery.Format(val)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
				return nil
			})
		},
	}

	c.Flags().BoolVar(&selectRows, "select", false, "Treat the expression as a filter and print matching rows")
	return c
}
