package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	app "github.com/rocketscienceinc/tictactoe-terminal/internal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	flagSet := pflag.NewFlagSet("tictactoe", pflag.ContinueOnError)
	configPath := flagSet.StringP("config", "c", defaultConfigPath, "path to the yaml config file")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		panic(fmt.Errorf("failed to parse flags: %w", err))
	}

	return config.MustLoad(*configPath)
}

// initialize logger. Stdout belongs to the game screen, so records go to the log file
// or nowhere.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var output io.Writer = io.Discard
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		output = file
		closeLog = func() {
			_ = file.Close()
		}
	}

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})), closeLog
}
