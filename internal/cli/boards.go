package cli

import (
	"fmt"

	service "github.com/okian/ipldash/internal/app"
	"github.com/spf13/cobra"
)

// Column headers per board: category then value.
var boardColumns = map[service.Board][2]string{
	service.BoardBatters:       {"Batter", "Runs"},
	service.BoardBowlers:       {"Bowler", "Wickets"},
	service.BoardAwards:        {"Player", "Awards"},
	service.BoardTeamWins:      {"Team", "Wins"},
	service.BoardVenues:        {"Venue", "Matches"},
	service.BoardCities:        {"City", "Matches"},
	service.BoardSeasonMatches: {"Season", "Matches"},
	service.BoardSeasonRuns:    {"Season", "Runs"},
	service.BoardResults:       {"Result", "Matches"},
	service.BoardDismissals:    {"Dismissal", "Count"},
	service.BoardToss:          {"Toss Winner", "Matches"},
}

// NewBoardsCommand creates the boards command.
func NewBoardsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List the available boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			boards := service.Boards()
			type boardInfo struct {
				Name  string `json:"name"`
				Title string `json:"title"`
			}
			infos := make([]boardInfo, len(boards))
			rows := make([][]string, len(boards))
			for i, b := range boards {
				infos[i] = boardInfo{Name: string(b), Title: b.Title()}
				rows[i] = []string{string(b), b.Title()}
			}
			return newFormatter(rootOpts, cmd.OutOrStdout()).Emit(infos, []string{"Board", "Title"}, rows)
		},
	}
}

// NewBoardCommand creates the board command.
func NewBoardCommand(rootOpts *RootOptions, defaultTop int) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "board <name>",
		Short: "Print the top entries of a board",
		Long: `Print the top entries of a board, sorted by value descending.

Run "ipl-report boards" for the list of board names.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := service.ParseBoard(args[0])
			if err != nil {
				return err
			}
			if top < 0 {
				return fmt.Errorf("--top must not be negative, got %d", top)
			}

			svc, err := open(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			entries, err := svc.Board(cmd.Context(), board, top)
			if err != nil {
				return err
			}
			cols := boardColumns[board]
			return newFormatter(rootOpts, cmd.OutOrStdout()).Entries(entries, cols[0], cols[1])
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", defaultTop, "number of entries to print")
	return cmd
}
