package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-manager/internal/app"
	"github.com/vladislavdragonenkov/order-manager/internal/version"
)

// setupLogger настраивает формат и уровень логирования.
// Логи идут в stderr, чтобы не мешать меню на stdout.
func setupLogger(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.WarnLevel
	}
	log.SetLevel(parsed)
}

// readConfig формирует конфигурацию, позволяя переопределить пути через флаги.
func readConfig() app.Config {
	cfg := app.FromEnv()

	flag.StringVar(&cfg.PendingPath, "pending-file", cfg.PendingPath, "path to the pending orders file")
	flag.StringVar(&cfg.CompletedPath, "completed-file", cfg.CompletedPath, "path to the completed orders file")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}
	return cfg
}

func main() {
	cfg := readConfig()
	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("order manager exited with error")
	}
}
