// Package main is the entry point for the orrery demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/game"
	"github.com/Faultbox/orrery/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Orrery ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := game.Run(cfg); err != nil {
		logger.Error("orrery failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("orrery closed normally")
	logger.Sync()
}
