package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tourbook/internal/app/template"
	"github.com/aalvaropc/tourbook/internal/domain"
	"github.com/aalvaropc/tourbook/internal/usecase"
)

func addCmd(opts *rootOptions) *cobra.Command {
	var tourType string
	var name string
	var hours bool
	var duration string
	var stops string
	var method string
	var noSave bool

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a tour, price it and save it to the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, err := domain.ParseVariant(tourType)
			if err != nil {
				return err
			}
			costMethod, err := domain.ParseCostMethod(method)
			if err != nil {
				return err
			}

			tourName, err := domain.ParseName(name)
			if err != nil {
				return err
			}

			draft := usecase.CreateTour(variant, tourName)
			draft.SetDurationUnit(hours)
			if err := draft.SetDuration(duration); err != nil {
				return err
			}
			if err := draft.SetStops(stops); err != nil {
				return err
			}
			if _, err := draft.ComputeCost(costMethod); err != nil {
				return err
			}

			return withWorkspace(cmd, opts, func(ctx context.Context, ws *workspaceCtx) error {
				tour := draft.Tour()
				out := cmd.OutOrStdout()

				fmt.Fprintln(out, tour.PlanningMessage())
				fmt.Fprintf(out, "Total cost: %s %s\n", template.FormatNumber(tour.Cost), ws.cfg.Display.Currency)

				if noSave {
					return nil
				}
				if err := ws.catalog.Add(ctx, tour); err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved as #%d.\n", ws.catalog.Count())
				return nil
			})
		},
	}

	c.Flags().StringVarP(&tourType, "type", "t", "", "Tour type: name or number 1-9 (see `tourbook types`)")
	c.Flags().StringVarP(&name, "name", "n", "", "Tour name (defaults to the type label)")
	c.Flags().BoolVar(&hours, "hours", false, "Duration is in hours instead of days")
	c.Flags().StringVarP(&duration, "duration", "d", "", "Duration (positive number)")
	c.Flags().StringVarP(&stops, "stops", "s", "0", "Number of stops (non-negative integer)")
	c.Flags().StringVarP(&method, "method", "m", "duration", "Cost method: duration|duration+stops (ignored for hours)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Only print the cost, do not save")

	_ = c.MarkFlagRequired("type")
	_ = c.MarkFlagRequired("duration")
	return c
}
