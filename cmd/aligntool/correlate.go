package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-align/correlation"
	"github.com/cwbudde/algo-align/span"
)

var errRangeWithoutIndex = errors.New("--start and --end need --index")

type correlateReport struct {
	Pairs           int        `json:"pairs"`
	Dropped         int        `json:"dropped"`
	IndexFirst      *float64   `json:"index_first,omitempty"`
	IndexLast       *float64   `json:"index_last,omitempty"`
	R               float64    `json:"r"`
	PValue          float64    `json:"p_value"`
	Slope           float64    `json:"slope"`
	Intercept       float64    `json:"intercept"`
	StdErr          float64    `json:"stderr"`
	InterceptStdErr float64    `json:"intercept_stderr"`
	LineX           [2]float64 `json:"line_x"`
	LineY           [2]float64 `json:"line_y"`
}

func newCorrelateCmd(a *app) *cobra.Command {
	var (
		in           columnFlags
		indexName    string
		noZeroFilter bool
		start, end   float64
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "correlate file.csv --x column --y column [flags]",
		Short: "Pearson correlation and linear regression of two CSV columns",
		Long: `Correlates column --y against column --x. Pairs in which either value is zero
are dropped unless --no-zero-filter is given. With --index the pairs are
labelled by that column, and --start/--end restrict them to an inclusive range
of index values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, t, err := in.load(cmd, a, args[0])
			if err != nil {
				return err
			}

			var index []float64
			if indexName != "" {
				if index, err = t.column(indexName); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
				if index == nil {
					return errRangeWithoutIndex
				}
				lo, hi := math.Inf(-1), math.Inf(1)
				if cmd.Flags().Changed("start") {
					lo = start
				}
				if cmd.Flags().Changed("end") {
					hi = end
				}

				var cols [][]float64
				index, cols, err = span.Truncate(index, lo, hi, x, y)
				if err != nil {
					return err
				}
				x, y = cols[0], cols[1]
				a.log.Debug("truncated", "start", lo, "end", hi, "rows", len(index))
			}

			zeroFilter := a.cfg.ZeroFilter
			if cmd.Flags().Changed("no-zero-filter") {
				zeroFilter = !noZeroFilter
			}

			c, err := correlation.New(x, y,
				correlation.WithZeroFilter(zeroFilter),
				correlation.WithIndex(index),
			)
			if err != nil {
				return err
			}
			a.log.Debug("pairs", "kept", c.Len(), "dropped", c.Dropped())

			report, err := buildCorrelateReport(c)
			if err != nil {
				return err
			}

			if pick(cmd, "json", asJSON, a.cfg.JSON) {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return writeCorrelateText(cmd.OutOrStdout(), report)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&indexName, "index", "", "column labelling the pairs")
	cmd.Flags().BoolVar(&noZeroFilter, "no-zero-filter", false, "keep pairs containing zeros")
	cmd.Flags().Float64Var(&start, "start", 0, "first index value to include (needs --index)")
	cmd.Flags().Float64Var(&end, "end", 0, "last index value to include (needs --index)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func buildCorrelateReport(c *correlation.Correlation) (correlateReport, error) {
	p, err := c.Pearson()
	if err != nil {
		return correlateReport{}, err
	}
	reg, err := c.LinearRegression()
	if err != nil {
		return correlateReport{}, err
	}
	lineX, lineY, err := c.RegressionLine()
	if err != nil {
		return correlateReport{}, err
	}

	report := correlateReport{
		Pairs:           c.Len(),
		Dropped:         c.Dropped(),
		R:               p.R,
		PValue:          p.PValue,
		Slope:           reg.Slope,
		Intercept:       reg.Intercept,
		StdErr:          reg.StdErr,
		InterceptStdErr: reg.InterceptStdErr,
		LineX:           lineX,
		LineY:           lineY,
	}

	if c.HasIndex() {
		first, last, err := span.Timespan(c.Index())
		if err != nil {
			return correlateReport{}, err
		}
		report.IndexFirst, report.IndexLast = &first, &last
	}

	return report, nil
}

func writeCorrelateText(w io.Writer, r correlateReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "pairs\t%d\n", r.Pairs)
	fmt.Fprintf(tw, "dropped\t%d\n", r.Dropped)
	if r.IndexFirst != nil {
		fmt.Fprintf(tw, "index\t%g .. %g\n", *r.IndexFirst, *r.IndexLast)
	}
	fmt.Fprintf(tw, "r\t%.6f\n", r.R)
	fmt.Fprintf(tw, "p\t%.6g\n", r.PValue)
	fmt.Fprintf(tw, "slope\t%.6f\t± %.6f\n", r.Slope, r.StdErr)
	fmt.Fprintf(tw, "intercept\t%.6f\t± %.6f\n", r.Intercept, r.InterceptStdErr)
	fmt.Fprintf(tw, "line\t(%g, %g) .. (%g, %g)\n", r.LineX[0], r.LineY[0], r.LineX[1], r.LineY[1])
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
