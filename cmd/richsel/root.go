package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rjkroege/richselect/internal/config"
)

// app is the state shared by every subcommand.
type app struct {
	configPath string
	debug      bool

	cfg    *config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer

	// send delivers plumb messages. Tests replace it.
	send func(m *plumbMessage) error
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, send: sendToPlumber}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "richsel",
		Short:         "Select text in laid-out Markdown documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (TOML or YAML)")
	root.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "log selection and layout events")

	root.AddCommand(
		newLayoutCmd(a),
		newHitCmd(a),
		newSelectCmd(a),
		newTextCmd(a),
		newOpenCmd(a),
	)
	return root
}

// setup loads the configuration and builds the logger. --debug overrides
// the configured level.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}
	if a.debug {
		opts.Level = slog.LevelDebug
	}
	if cfg.Logging.Format == "json" {
		a.log = slog.New(slog.NewJSONHandler(a.stderr, opts))
	} else {
		a.log = slog.New(slog.NewTextHandler(a.stderr, opts))
	}
	return nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// terminal reports whether output goes to a terminal, in which case
// reports are printed as tables rather than YAML.
func (a *app) terminal() bool {
	f, ok := a.stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
