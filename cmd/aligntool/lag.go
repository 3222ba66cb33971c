package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-align/lag"
)

type lagReport struct {
	Samples     int     `json:"samples"`
	MaxLag      int     `json:"max_lag"`
	Lag         int     `json:"lag"`
	Coefficient float64 `json:"coefficient"`
}

func newLagCmd(a *app) *cobra.Command {
	var (
		in     columnFlags
		maxLag int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "lag file.csv --x column --y column [--max-lag n]",
		Short: "Find the sample offset that best aligns two CSV columns",
		Long: `Searches lags in [-max-lag, max-lag] for the peak of the normalised
cross-correlation of --x against --y. A positive lag means --x trails --y.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, _, err := in.load(cmd, a, args[0])
			if err != nil {
				return err
			}
			ml := pick(cmd, "max-lag", maxLag, a.cfg.MaxLag)

			res, err := lag.BestLag(x, y, ml)
			if err != nil {
				return err
			}
			a.log.Debug("lag", "samples", len(x), "max_lag", ml, "lag", res.Lag)

			report := lagReport{Samples: len(x), MaxLag: ml, Lag: res.Lag, Coefficient: res.Coefficient}
			if pick(cmd, "json", asJSON, a.cfg.JSON) {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "samples\t%d\n", report.Samples)
			fmt.Fprintf(tw, "lag\t%d\n", report.Lag)
			fmt.Fprintf(tw, "coefficient\t%.6f\n", report.Coefficient)
			return tw.Flush()
		},
	}

	in.register(cmd)
	cmd.Flags().IntVar(&maxLag, "max-lag", 50, "largest lag to test in either direction")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}
