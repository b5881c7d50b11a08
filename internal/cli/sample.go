package cli

import (
	"fmt"
	"os"

	"github.com/okian/ipldash/internal/sample"
	"github.com/spf13/cobra"
)

// SampleOptions holds flags for the sample command.
type SampleOptions struct {
	Out              string
	FirstSeason      int
	LastSeason       int
	MatchesPerSeason int
	Seed             int64
	Tiny             bool
}

// NewSampleCommand creates the sample command.
func NewSampleCommand() *cobra.Command {
	opts := &SampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a synthetic matches/deliveries dataset",
		Long: `Write a deterministic synthetic dataset in the dashboard's CSV schema.

Useful for trying the dashboard without the real data files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "data", "output directory")
	cmd.Flags().IntVar(&opts.FirstSeason, "first-season", 2008, "first season")
	cmd.Flags().IntVar(&opts.LastSeason, "last-season", 2012, "last season")
	cmd.Flags().IntVar(&opts.MatchesPerSeason, "per-season", 20, "matches per season")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 42, "random seed")
	cmd.Flags().BoolVar(&opts.Tiny, "tiny", false, "write the 3 match / 10 delivery fixture instead")

	return cmd
}

func runSample(opts *SampleOptions, cmd *cobra.Command) error {
	if opts.LastSeason < opts.FirstSeason {
		return fmt.Errorf("--last-season %d is before --first-season %d", opts.LastSeason, opts.FirstSeason)
	}
	if opts.MatchesPerSeason < 1 {
		return fmt.Errorf("--per-season must be positive, got %d", opts.MatchesPerSeason)
	}
	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", opts.Out, err)
	}

	matches, deliveries := sample.Tiny()
	if !opts.Tiny {
		matches, deliveries = sample.NewGenerator(
			sample.WithSeasons(opts.FirstSeason, opts.LastSeason),
			sample.WithMatchesPerSeason(opts.MatchesPerSeason),
			sample.WithSeed(opts.Seed),
		).Generate()
	}

	mp, dp, err := sample.WriteCSV(opts.Out, matches, deliveries)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d matches to %s\nwrote %d deliveries to %s\n",
		len(matches), mp, len(deliveries), dp)
	return nil
}
