package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/highscore"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Launcher builds sessions for the terminal front ends. It is shared by the
// local menu, the single-variant player and the SSH server.
type Launcher struct {
	Config   config.RunnerConfig
	Seed     int64 // 0: time based per session
	TickRate int
	Store    *storage.Store // optional run history
	// HighScores overrides the high score store of a variant.
	// When nil, the run history database is used, or memory without one.
	HighScores func(variant string) (highscore.Store, error)
	Logger     *log.Logger
}

func (l *Launcher) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

func (l *Launcher) tickRate() int {
	if l.TickRate <= 0 {
		return core.DefaultConfig().TickRate
	}
	return l.TickRate
}

func (l *Launcher) highScores(variant string) highscore.Store {
	if l.HighScores != nil {
		hs, err := l.HighScores(variant)
		if err == nil {
			return hs
		}
		l.logger().Warn("high score store unavailable, keeping it in memory", "variant", variant, "err", err)
		return &highscore.Memory{}
	}
	if l.Store != nil {
		return l.Store.HighScores(variant)
	}
	return &highscore.Memory{}
}

// NewSession creates a session for a registered variant. Finished runs are
// appended to the run history when a database is configured.
func (l *Launcher) NewSession(variant string) (*runner.Session, error) {
	logger := l.logger().With("variant", variant)
	return runner.NewVariantSession(variant, runner.Options{
		Config: l.Config,
		Seed:   l.Seed,
		Store:  l.highScores(variant),
		Logger: logger,
		OnGameOver: func(res runner.RunResult) {
			if l.Store == nil || res.Score == 0 {
				return
			}
			if _, err := l.Store.SaveRun(res.Variant, res.Score, res.Ticks, res.Seed); err != nil {
				logger.Warn("cannot save run", "err", err)
			}
		},
	})
}
