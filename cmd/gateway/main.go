package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/cardflow-gateway/gateway"
	"golang.org/x/exp/slog"
)

func main() {
	config, err := gateway.LoadConfig()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	app := gateway.NewApp(logger, config)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}
