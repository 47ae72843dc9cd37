package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/highscore"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// High score store kinds.
const (
	storeSQLite  = "sqlite"
	storeFile    = "file"
	storeProfile = "profile"
)

// newLogger creates the command logger. Interactive commands own the
// terminal, so without --log-file they log nowhere.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		path, err := highscore.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if os.Getenv("RUNNER_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig loads the runner config and applies --difficulty.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openStore opens the run history database. A failure is reported and the
// caller continues without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	return store
}

// highScoreStores returns the per-variant high score store factory for
// --store, or nil to use the run history database.
func highScoreStores() func(variant string) (highscore.Store, error) {
	switch flagStore {
	case storeFile:
		return func(variant string) (highscore.Store, error) {
			return highscore.NewFileStore(variantFile(flagHighScore, variant))
		}
	case storeProfile:
		return func(variant string) (highscore.Store, error) {
			return highscore.OpenProfile(variant)
		}
	}
	return nil
}

// variantFile derives a per-variant file from the --highscore path:
// highscore.json becomes highscore.pixel.json.
func variantFile(path, variant string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + variant + ext
}

// newLauncher builds the session launcher shared by play, menu and serve.
func newLauncher(cfg config.RunnerConfig, store *storage.Store, logger *log.Logger) *tui.Launcher {
	return &tui.Launcher{
		Config:     cfg,
		Seed:       flagSeed,
		TickRate:   flagFPS,
		Store:      store,
		HighScores: highScoreStores(),
		Logger:     logger,
	}
}

// checkVariant reports unknown variant ids.
func checkVariant(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q, run 'runner list' to see available variants", id)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
