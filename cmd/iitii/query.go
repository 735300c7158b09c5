package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/biodatageeks/iitii"
	"github.com/biodatageeks/iitii/internal/bed"
)

func newQueryCmd() *cobra.Command {
	var domains int

	cmd := &cobra.Command{
		Use:   "query <intervals.bed> <region>...",
		Short: "Query a BED file for intervals overlapping the given regions",
		Long: `Load a BED file (plain or gzipped), build an interpolated interval index
per chromosome, and print every interval overlapping each region.
Regions use the chrom:beg-end form with half-open coordinates.`,
		Example: `  iitii query exons.bed chr1:100000-200000
  iitii query exons.bed.gz chr2:0-50000 chrX:1000-2000`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0], args[1:], domains)
		},
	}

	cmd.Flags().IntVar(&domains, "domains", viper.GetInt("query.domains"), "Interpolation model domains per chromosome")

	return cmd
}

// parseRegion parses a chrom:beg-end region string.
func parseRegion(s string) (chrom string, beg, end int64, err error) {
	colon := strings.LastIndex(s, ":")
	if colon < 1 {
		return "", 0, 0, fmt.Errorf("region %q: expected chrom:beg-end", s)
	}
	chrom = s[:colon]
	dash := strings.Index(s[colon+1:], "-")
	if dash < 0 {
		return "", 0, 0, fmt.Errorf("region %q: expected chrom:beg-end", s)
	}
	beg, err = strconv.ParseInt(s[colon+1:colon+1+dash], 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("region %q: invalid begin: %w", s, err)
	}
	end, err = strconv.ParseInt(s[colon+1+dash+1:], 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("region %q: invalid end: %w", s, err)
	}
	if beg < 0 || end < beg {
		return "", 0, 0, fmt.Errorf("region %q: invalid range [%d, %d)", s, beg, end)
	}
	return chrom, beg, end, nil
}

func runQuery(path string, regions []string, domains int) error {
	ivs, err := bed.ReadAll(path)
	if err != nil {
		return fmt.Errorf("load intervals: %w", err)
	}

	// One index per chromosome.
	byChrom := map[string]*iitii.Builder[int64, bed.Interval]{}
	for _, iv := range ivs {
		b, ok := byChrom[iv.Chrom]
		if !ok {
			b = iitii.NewBuilder[int64](
				func(iv bed.Interval) int64 { return iv.Start },
				func(iv bed.Interval) int64 { return iv.End },
			)
			b.SetLogger(logger)
			byChrom[iv.Chrom] = b
		}
		b.Add(iv)
	}
	indexes := map[string]*iitii.Interpolated[int64, bed.Interval]{}
	for chrom, b := range byChrom {
		indexes[chrom] = b.BuildInterpolated(domains)
	}

	logger.Info("index built",
		zap.Int("intervals", len(ivs)),
		zap.Int("chromosomes", len(indexes)),
		zap.Int("domains", domains))

	var ans []*bed.Interval
	for _, region := range regions {
		chrom, beg, end, err := parseRegion(region)
		if err != nil {
			return err
		}

		ix, ok := indexes[chrom]
		if !ok {
			logger.Warn("no intervals for chromosome", zap.String("chrom", chrom))
			continue
		}

		cost := ix.Overlap(beg, end, &ans)
		logger.Debug("query answered",
			zap.String("region", region),
			zap.Int("hits", len(ans)),
			zap.Int("cost", cost))

		hits := make([]bed.Interval, 0, len(ans))
		for _, h := range ans {
			hits = append(hits, *h)
		}
		sort.Slice(hits, func(i, j int) bool {
			if hits[i].Start != hits[j].Start {
				return hits[i].Start < hits[j].Start
			}
			return hits[i].End < hits[j].End
		})
		if err := bed.Write(os.Stdout, hits); err != nil {
			return err
		}
	}

	return nil
}
