package main

import (
	"github.com/spf13/cobra"
)

// columnFlags selects the two data columns shared by correlate and lag.
type columnFlags struct {
	x, y      string
	delimiter string
}

func (c *columnFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.x, "x", "", "primary column")
	cmd.Flags().StringVar(&c.y, "y", "", "correlant column")
	cmd.Flags().StringVar(&c.delimiter, "delimiter", ",", "CSV field delimiter")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
}

func (c *columnFlags) load(cmd *cobra.Command, a *app, path string) (x, y []float64, t *table, err error) {
	delim, err := delimiterRune(pick(cmd, "delimiter", c.delimiter, a.cfg.Delimiter))
	if err != nil {
		return nil, nil, nil, err
	}

	t, err = loadTable(path, delim)
	if err != nil {
		return nil, nil, nil, err
	}
	a.log.Debug("csv loaded", "path", path, "rows", t.rows())

	if x, err = t.column(c.x); err != nil {
		return nil, nil, nil, err
	}
	if y, err = t.column(c.y); err != nil {
		return nil, nil, nil, err
	}
	return x, y, t, nil
}
