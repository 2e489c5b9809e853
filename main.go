package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nettui/internal/app"
	"nettui/internal/models"
	"nettui/internal/services"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := newLogger()
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		return 1
	}
	defer logger.Sync()

	// Ctrl-C arrives as a key press in raw mode; these cover kill and hangup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	err = app.Run(ctx, app.Options{
		Reader: services.PlatformCounters,
		Clock:  clock.New(),
		Logger: logger,
		Config: models.DefaultConfig(),
	})
	if err != nil {
		logger.Error("monitor stopped", zap.Error(err))
		return 1
	}

	logger.Debug("monitor stopped")
	return 0
}

// newLogger writes to stderr, which is only visible once the terminal has
// been restored. NETTUI_LOG sends debug output to a file instead so the loop
// can be traced while it runs.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	if path := os.Getenv("NETTUI_LOG"); path != "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}

	return cfg.Build()
}
