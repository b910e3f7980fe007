package main

import (
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"folio/internal/app"
	"folio/internal/config"
	"folio/internal/config/logger"
)

const sentryFlushTimeout = 2 * time.Second

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	// optional, a missing .env is not an error
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		os.Exit(1)
	}

	if initSentry() {
		defer sentry.Flush(sentryFlushTimeout)
	}

	noUI := hasNoUIFlag(os.Args[1:])
	application := createApp(cfg, noUI)
	application.Run()
}

// hasNoUIFlag checks if --no-ui flag is present in args
func hasNoUIFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--no-ui" {
			return true
		}
	}

	return false
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// initSentry enables crash reporting when a DSN is configured
func initSentry() bool {
	dsn := os.Getenv("FOLIO_SENTRY_DSN")
	if dsn == "" {
		return false
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: "folio@" + config.Version,
	})

	return err == nil
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, noUI bool) *fx.App {
	var logOutput io.Writer
	if !noUI {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}
