// Package cli implements the ipl-report command line tool: the dashboard
// aggregations printed as terminal tables.
package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/okian/ipldash/internal/adapters/loader"
	service "github.com/okian/ipldash/internal/app"
	"github.com/okian/ipldash/internal/config"
	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/pkg/logger"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Matches      string
	Deliveries   string
	SeasonSource string
	Format       string // "table" | "json"
	Verbose      bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"table", "json"}

// NewRootCommand creates the root command. Flag defaults come from cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.New()
	}
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ipl-report",
		Short: "IPL analytics in the terminal",
		Long: `Print the IPL dashboard aggregations as terminal tables.

Reads the same matches and deliveries CSV files as the dashboard server.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error and picks the exit code
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := model.ParseSeasonSource(opts.SeasonSource); err != nil {
				return err
			}
			level := "warn"
			if opts.Verbose {
				level = "debug"
			}
			return logger.SetLevelString(level)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Matches, "matches", cfg.MatchesPath, "matches CSV file")
	cmd.PersistentFlags().StringVar(&opts.Deliveries, "deliveries", cfg.DeliveriesPath, "deliveries CSV file")
	cmd.PersistentFlags().StringVar(&opts.SeasonSource, "season-source", cfg.SeasonSource, "season derivation (field|date)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "table", "output format (table|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging on stderr")

	// Add subcommands
	cmd.AddCommand(NewOverviewCommand(opts))
	cmd.AddCommand(NewBoardsCommand(opts))
	cmd.AddCommand(NewBoardCommand(opts, cfg.DefaultTopN))
	cmd.AddCommand(NewTeamsCommand(opts))
	cmd.AddCommand(NewTeamCommand(opts))
	cmd.AddCommand(NewSampleCommand())

	return cmd
}

// open loads the dataset named by the global flags.
func open(ctx context.Context, opts *RootOptions) (*service.Service, error) {
	src, err := model.ParseSeasonSource(opts.SeasonSource)
	if err != nil {
		return nil, err
	}
	svc := service.New(
		service.WithDataPaths(opts.Matches, opts.Deliveries),
		service.WithSeasonSource(src),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return svc, nil
}

// ExitCode maps an error returned by a command to a process exit code:
// 2 when the dataset could not be loaded, 1 otherwise.
func ExitCode(err error) int {
	var le *loader.LoadError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &le):
		return 2
	default:
		return 1
	}
}
