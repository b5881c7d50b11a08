package cli

import (
	"github.com/okian/ipldash/internal/domain/chart"
	"github.com/spf13/cobra"
)

// NewOverviewCommand creates the overview command.
func NewOverviewCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the headline numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			o, err := svc.Overview(cmd.Context())
			if err != nil {
				return err
			}

			count := func(n int) string { return chart.Count(float64(n)) }
			rows := [][]string{
				{"Matches", count(o.Matches)},
				{"Seasons", count(o.Seasons)},
				{"Teams", count(o.Teams)},
				{"Venues", count(o.Venues)},
				{"Deliveries", count(o.Deliveries)},
				{"Runs", count(o.Runs)},
				{"Wickets", count(o.Wickets)},
			}
			return newFormatter(rootOpts, cmd.OutOrStdout()).Emit(o, []string{"Metric", "Value"}, rows)
		},
	}
}
