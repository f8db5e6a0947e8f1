package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/discovery/internal/config"
	"github.com/alfredjeanlab/discovery/internal/ui"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	cfg        *config.Config
	log        *slog.Logger
	style      ui.Styler
	jsonOutput bool
	verbose    bool
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		lvl = slog.LevelDebug
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.style = ui.Styler{Color: ui.ShouldUseColor(cfg.Color, asFile(cmd.OutOrStdout()))}
	a.log.Debug("loaded config", "path", cfg.Path, "defaults", len(cfg.Defaults), "color", cfg.Color)
	return nil
}

func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

func printError(w io.Writer, style ui.Styler, err error) {
	fmt.Fprintf(w, "%s %v\n", style.Error("Error:"), err)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "discovery <command>",
		Short:         "Build and inspect discovery query parameters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddGroup(
		&cobra.Group{ID: "query", Title: "Queries:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)
	root.SetHelpFunc(colorizedHelpFunc())

	root.AddCommand(newEncodeCmd(a))
	root.AddCommand(newDecodeCmd(a))
	root.AddCommand(newSeedCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		style := ui.Styler{Color: ui.ShouldUseColor(os.Getenv("DISCOVERY_COLOR"), os.Stderr)}
		printError(os.Stderr, style, err)
		os.Exit(1)
	}
}
