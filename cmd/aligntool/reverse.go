package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-align/flags"
)

func newReverseCmd(a *app) *cobra.Command {
	var (
		width   int
		quality string
	)

	cmd := &cobra.Command{
		Use:   "reverse --width n [--quality level] flag...",
		Short: "Reverse the bit order of quality flags",
		Long: `Reverses the lowest width bits of every flag value and prints the results on
one line. With --quality the input flags are listed next to their reversal
and whether the given quality level (good, patchy or bad) accepts them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			w := pick(cmd, "width", width, a.cfg.Width)

			reversed, err := flags.Reverse(values, w)
			if err != nil {
				return err
			}
			a.log.Debug("reverse", "values", len(values), "width", w)

			level := pick(cmd, "quality", quality, a.cfg.Quality)
			if level == "" {
				fields := make([]string, len(reversed))
				for i, r := range reversed {
					fields[i] = strconv.Itoa(r)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " "))
				return err
			}

			q, err := flags.ParseQuality(level)
			if err != nil {
				return err
			}
			accepted := flags.Accept(values, q.MaxFlag())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Flag\tReversed\tAccepted (%s)\n", q)
			for i, v := range values {
				fmt.Fprintf(tw, "%d\t%d\t%t\n", v, reversed[i], accepted[i])
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&width, "width", 8, "number of flag bits")
	cmd.Flags().StringVar(&quality, "quality", "", "also report acceptance at this quality level")

	return cmd
}
