package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kilianc/fritz2html/internal/config"
	"github.com/kilianc/fritz2html/internal/logging"
)

// app holds state shared by subcommands, filled in before any of them run.
type app struct {
	configPath string
	debug      bool

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "fritz2html",
		Short: "Convert HTML fragments into fritz2 builder code",
		Long: `fritz2html turns HTML markup into Kotlin code for the fritz2 tag builder DSL.
Known tags and attributes map to their fritz2 builders and setters; anything
else goes through custom(...) and attr(...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log debug output to stderr")

	cmd.AddCommand(newConvertCmd(a), newWatchCmd(a), newVersionCmd())
	return cmd
}

func (a *app) setup() error {
	if a.debug {
		a.log = logging.New(slog.LevelDebug)
	} else {
		a.log = logging.NewNop()
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", a.configPath, "indent_width", cfg.IndentWidth, "use_tabs", cfg.UseTabs)
	return nil
}
