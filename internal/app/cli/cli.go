//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"folio/internal/app/content"
	"folio/internal/app/theme"
	"folio/internal/app/ui"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	cfg      *config.Config
	uiBuild  ui.UI
	provider content.Provider
	store    theme.Store
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	uiBuild ui.UI,
	provider content.Provider,
	store theme.Store,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:      cfg,
		uiBuild:  uiBuild,
		provider: provider,
		store:    store,
		log:      log,
	}
}

// Execute parses command-line arguments and runs the selected command
func (c *cli) Execute() (int, error) {
	opts, err := Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1, err
	}

	if opts.Language != "" {
		if err := c.provider.SetLanguage(opts.Language); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			return 1, err
		}
	}

	if opts.Stats {
		c.cfg.Stats.Enabled = true
	}

	switch opts.Type {
	case CommandVersion:
		c.printVersion()

		return 0, nil

	case CommandRender:
		return c.renderPlain(os.Stdout)

	case CommandTheme:
		c.printTheme(os.Stdout)

		return 0, nil

	case CommandThemeReset:
		return c.resetTheme()
	}

	// a pipe gets the plain rendering, the TUI needs a real terminal
	if opts.NoUI || !term.IsTerminal(os.Stdout.Fd()) {
		return c.renderPlain(os.Stdout)
	}

	return c.runTUI(context.Background())
}

// runTUI builds and runs the Bubble Tea program
func (c *cli) runTUI(ctx context.Context) (int, error) {
	program, err := c.uiBuild(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to build TUI")

		return 1, err
	}

	c.log.Debug().Msg("Starting TUI")

	if _, err := program.Run(); err != nil {
		c.log.Error().Err(err).Msg("TUI exited with error")

		return 1, err
	}

	return 0, nil
}

// printVersion displays version information
func (c *cli) printVersion() {
	fmt.Printf("folio v%s\n", config.Version)
}

// printTheme displays the persisted theme, or the default when none is saved
func (c *cli) printTheme(w io.Writer) {
	value, ok := c.store.Read()
	if !ok {
		fmt.Fprintf(w, "%s (default)\n", value)

		return
	}

	fmt.Fprintln(w, value)
}

// resetTheme forgets the persisted theme
func (c *cli) resetTheme() (int, error) {
	if err := c.store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1, err
	}

	return 0, nil
}
