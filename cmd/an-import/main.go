// Command an-import migrates people from a NationBuilder CSV export into
// Action Network through its OSDI API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/surj/an-import/internal/config"
	"github.com/surj/an-import/internal/logging"
)

func main() {
	// .env values never override variables already set in the shell
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if envLoaded {
		slog.Debug("loaded .env file")
	}
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Execute(ctx, cfg, os.Args[1:])
	cancel()
	os.Exit(code)
}
