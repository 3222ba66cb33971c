package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// app holds the state shared by all subcommands once the persistent flags
// have been parsed.
type app struct {
	configPath string
	verbose    bool

	cfg config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:          "aligntool",
		Short:        "Align, flag and correlate paired measurement series",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with default settings")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newClosestCmd(a),
		newReverseCmd(a),
		newCorrelateCmd(a),
		newLagCmd(a),
		newInfoCmd(a),
	)

	return root
}

func (a *app) setup(stderr io.Writer) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.configPath != "" {
		a.log.Debug("config loaded", "path", a.configPath, "policy", cfg.Policy, "width", cfg.Width, "delimiter", cfg.Delimiter)
	}
	return nil
}

// pick returns the flag value when the user set the flag explicitly and the
// configured value otherwise.
func pick[T any](cmd *cobra.Command, name string, flagValue, configured T) T {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configured
}
