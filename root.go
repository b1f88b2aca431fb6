package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/MCSeekeri/ferris-fetch/config"
	"github.com/MCSeekeri/ferris-fetch/logging"
	"github.com/MCSeekeri/ferris-fetch/render"
	"github.com/MCSeekeri/ferris-fetch/sysinfo"
	"github.com/MCSeekeri/ferris-fetch/theme"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// rootFlags holds the command-line toggles before config-file merging.
type rootFlags struct {
	theme     string
	noColor   bool
	minimal   bool
	noArt     bool
	verbosity int
}

// newRootCmd builds the ferris-fetch command.
//
// Returns:
//   - A configured *cobra.Command ready for Execute
//
// The command takes no positional arguments; all behavior is driven by
// flags and the optional config file.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "ferris-fetch",
		Short: "Display system information beside Ferris the crab",
		Long: "ferris-fetch gathers host facts (OS, kernel, uptime, shell, CPU,\n" +
			"memory, disk) and displays them beside Ferris, rendered as an inline\n" +
			"terminal image where the terminal supports one and as ASCII art\n" +
			"everywhere else.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flags.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.theme, "theme", "t", "rust",
		"color theme ("+strings.Join(theme.Names(), ", ")+")")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&flags.minimal, "minimal", "m", false, "compact display with fewer facts")
	cmd.Flags().BoolVar(&flags.noArt, "no-art", false, "hide the mascot")
	cmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v",
		"increase log verbosity (-v info, -vv debug, -vvv trace)")

	return cmd
}

// run performs the single fetch-and-render pass. Config-file values
// apply only where the matching flag was not set on the command line.
func run(cmd *cobra.Command, flags *rootFlags) error {
	cfg := config.Load()
	if cmd.Flags().Changed("theme") {
		cfg.Theme = flags.theme
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = flags.noColor
	}
	if cmd.Flags().Changed("minimal") {
		cfg.Minimal = flags.minimal
	}
	if cmd.Flags().Changed("no-art") {
		cfg.NoArt = flags.noArt
	}

	out := cmd.OutOrStdout()
	th := theme.Resolve(cfg.Theme, theme.NewRenderer(out, cfg.NoColor))
	facts := sysinfo.Collect()

	term := render.NewTerminal(out)
	result := render.New(term).Render(facts, th, render.Options{
		Minimal: cfg.Minimal,
		NoArt:   cfg.NoArt,
	})
	log := logging.GetLogger("cli")
	log.Debug().
		Stringer("path", result.Path).
		Int("rows", result.Rows).
		Str("reason", result.FallbackReason).
		Msg("render complete")

	return term.Flush()
}
