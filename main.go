package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	app "github.com/rocketscienceinc/gamehub-backend/internal"
	"github.com/rocketscienceinc/gamehub-backend/internal/config"
	"github.com/rocketscienceinc/gamehub-backend/internal/logger"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	log := initLogger(conf)

	defer func() {
		_ = log.Sync()
	}()

	if err := app.RunApp(log, conf); err != nil {
		log.Error("app run failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *zap.Logger {
	log, err := logger.New(conf.LogLevel, conf.LogFile)
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}

	return log
}
