package cli

import (
	"github.com/spf13/cobra"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandView CommandType = iota
	CommandRender
	CommandVersion
	CommandTheme
	CommandThemeReset
)

// Options contains the parsed command-line arguments
type Options struct {
	Type     CommandType
	Language string
	NoUI     bool
	Stats    bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
	lang    string
	noUI    bool
	stats   bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandView,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRenderCommand(result),
		buildVersionCommand(result),
		buildThemeCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	result.Language = flags.lang
	result.NoUI = flags.noUI
	result.Stats = flags.stats

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "A terminal portfolio with section navigation, themes and languages",
		Long: `Folio renders a personal portfolio in the terminal: navigable sections,
a persisted light/dark theme and runtime language switching.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandView
		},
	}

	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.PersistentFlags().StringVar(&flags.lang, "lang", "", "Start in the given language")
	cmd.PersistentFlags().BoolVar(&flags.noUI, "no-ui", false, "Print the portfolio to stdout instead of the TUI")
	cmd.PersistentFlags().BoolVar(&flags.stats, "stats", false, "Show the process stats overlay")

	return cmd
}

// buildRenderCommand creates the render subcommand
func buildRenderCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the portfolio to stdout and exit",
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRender
		},
	}
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}

// buildThemeCommand creates the theme subcommand and its reset child
func buildThemeCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the persisted theme",
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandTheme
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the persisted theme",
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandThemeReset
		},
	})

	return cmd
}
