package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/biodatageeks/iitii/internal/bed"
	"github.com/biodatageeks/iitii/internal/bench"
)

func newGenerateCmd() *cobra.Command {
	var (
		items     int
		space     int64
		maxLen    int64
		clustered bool
		seed      int64
		output    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic BED file",
		Example: `  iitii generate --items 100000 > uniform.bed
  iitii generate --clustered --items 10000 -o clustered.bed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))

			var ivs []bed.Interval
			if clustered {
				ivs = bench.Clustered(rng, items, space/1000+1, 10, space)
			} else {
				ivs = bench.Uniform(rng, items, space, maxLen)
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := bed.Write(out, ivs); err != nil {
				return err
			}
			logger.Info("dataset written",
				zap.Int("items", len(ivs)),
				zap.String("output", output))
			return nil
		},
	}

	cmd.Flags().IntVar(&items, "items", 100000, "Number of intervals to generate")
	cmd.Flags().Int64Var(&space, "space", 100000000, "Coordinate space upper bound")
	cmd.Flags().Int64Var(&maxLen, "max-len", 10000, "Maximum interval length")
	cmd.Flags().BoolVar(&clustered, "clustered", false, "Generate a clustered dataset instead of uniform")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
