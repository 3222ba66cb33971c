package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-align/search"
)

func newClosestCmd(a *app) *cobra.Command {
	var (
		reference []float64
		policy    string
	)

	cmd := &cobra.Command{
		Use:   "closest --reference r1,r2,... [--policy name] value...",
		Short: "Find the reference entry closest to each value",
		Long: `Prints, for each value, the position and value of the reference entry
closest to it. Policies:
  closest        nearest in either direction
  closest_low    nearest entry not above the value
  closest_high   nearest entry not below the value`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := search.ParsePolicy(pick(cmd, "policy", policy, a.cfg.Policy))
			if err != nil {
				return err
			}
			queries, err := parseFloats(args)
			if err != nil {
				return err
			}

			a.log.Debug("closest", "reference", len(reference), "queries", len(queries), "policy", p)

			indices, err := search.FindClosestAll(reference, queries, p)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Value\tIndex\tReference")
			for i, q := range queries {
				fmt.Fprintf(tw, "%g\t%d\t%g\n", q, indices[i], reference[indices[i]])
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64SliceVar(&reference, "reference", nil, "comma-separated reference values")
	cmd.Flags().StringVar(&policy, "policy", "closest", "closest, closest_low or closest_high")
	_ = cmd.MarkFlagRequired("reference")

	return cmd
}
