package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/logging"
	"github.com/vovakirdan/nightfall/internal/platform/tui"
	"github.com/vovakirdan/nightfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addGameFlags registers the flags shared by commands that start runs.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom survival config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadConfig reads the survival config and applies the difficulty preset.
func loadConfig() (config.SurvivalConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.SurvivalConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadSurvival(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplySurvivalPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// dataDir returns the expanded data directory, creating it if needed.
func dataDir() (string, error) {
	dir := config.ExpandHome(flagDataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// newLogger builds the process logger. Interactive commands log to a file
// so the alternate screen stays clean; the returned closer releases it.
func newLogger(toFile bool, dir string) (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if toFile {
		f, err := os.OpenFile(filepath.Join(dir, "nightfall.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}
	logger, err := logging.New(w, flagLogLevel, "nightfall")
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}

// openStore opens the run history. Failure is not fatal: runs still play,
// they are just not recorded.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig returns the runtime settings sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// session bundles what an interactive command needs and cleans it up.
type session struct {
	launcher tui.Launcher
	closers  []io.Closer
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i].Close()
	}
}

// newSession loads config, logger and store for a command.
func newSession(logToFile bool) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := newLogger(logToFile, dir)
	if err != nil {
		return nil, err
	}

	s := &session{closers: []io.Closer{logCloser}}
	store := openStore(logger)
	if store != nil {
		s.closers = append(s.closers, store)
	}

	s.launcher = tui.Launcher{
		Config:  cfg,
		Runtime: runtimeConfig(),
		DataDir: dir,
		Store:   store,
		Logger:  logger,
	}
	return s, nil
}
