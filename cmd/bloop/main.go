package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bloop/internal/game"
)

func main() {
	configPath := flag.String("config", "bloop.toml", "path to settings file")
	flag.Parse()

	cfg, cfgErr := game.LoadSettings(*configPath)

	log, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfgErr != nil {
		log.Warn("settings load failed, using defaults", zap.Error(cfgErr))
	}

	if err := game.RunDesktop(cfg, log); err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}

func buildLogger(cfg game.LoggingSettings) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
