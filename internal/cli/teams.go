package cli

import (
	"github.com/okian/ipldash/internal/domain/types"
	"github.com/spf13/cobra"
)

// NewTeamsCommand creates the teams command.
func NewTeamsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Print the win-rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			records, err := svc.WinRates(cmd.Context())
			if err != nil {
				return err
			}
			return newFormatter(rootOpts, cmd.OutOrStdout()).TeamRecords(records)
		},
	}
}

// NewTeamCommand creates the team command.
func NewTeamCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "team <name>",
		Short: "Print the season wins of one team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			report, err := svc.Team(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			f := newFormatter(rootOpts, cmd.OutOrStdout())
			if f.Format == "json" {
				return f.Emit(report, nil, nil)
			}
			if err := f.TeamRecords([]types.TeamRecord{report.Record}); err != nil {
				return err
			}
			if err := f.Entries(report.SeasonWins, "Season", "Wins"); err != nil {
				return err
			}
			return f.Entries(report.TopVenues, "Venue", "Wins")
		},
	}
}
