package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tourbook/internal/domain"
)

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the tour types accepted by --type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for i, v := range domain.Variants() {
				fmt.Fprintf(out, "%d. %-15s %-16s %s\n", i+1, string(v), v.Label(), v.LabelUK())
			}
			return nil
		},
	}
}
