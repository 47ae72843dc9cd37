// Package runner implements the endless-runner simulation: the player body,
// obstacles, clouds, the scrolling ground, the spawners and the session state
// machine that ties them together. It draws nothing; presentations read a
// Snapshot after every tick.
package runner

import (
	"io"
	"math/rand"
	"reflect"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-runner/internal/collision"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

// State is the session state.
type State int

const (
	NotStarted State = iota
	Playing
	GameOver
)

var stateNames = [...]string{"not_started", "playing", "game_over"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalYAML writes the state by name.
func (s State) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// HighScoreStore persists the best score. Load is called once per session;
// Save only when a run beats the stored value.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// RunResult describes a finished run.
type RunResult struct {
	Variant string `yaml:"variant"`
	Score   int    `yaml:"score"`
	Ticks   int    `yaml:"ticks"`
	Seed    int64  `yaml:"seed"`
	NewHigh bool   `yaml:"new_high"`
}

// SpawnRecord is one entry of the spawn log.
type SpawnRecord struct {
	Tick int     `yaml:"tick"`
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Options configures a session.
type Options struct {
	Config    config.RunnerConfig // zero or invalid: defaults
	Skin      *skin.Profile      // nil: builtin "shapes"
	Collision collision.Strategy // nil: bounding boxes
	Seed      int64              // 0: time based
	Variant   string
	Store     HighScoreStore // nil: high score kept in memory only
	Logger    *log.Logger    // nil: discard
	// OnGameOver is called synchronously once per finished run.
	OnGameOver func(RunResult)
}

// Session owns all mutable simulation state. It is not safe for concurrent
// use; a single loop drives it.
type Session struct {
	cfg      config.RunnerConfig
	skin     *skin.Profile
	detector *collision.Detector
	store    HighScoreStore
	logger   *log.Logger
	onOver   func(RunResult)
	variant  string
	seed     int64
	rng      *rand.Rand

	state     State
	quitting  bool
	score     int
	highScore int
	ticks     int
	speed     *config.SpeedController

	player    *Player
	obstacles []Obstacle
	clouds    []Cloud
	ground    *Ground

	obstacleSpawner *Spawner
	cloudSpawner    *Spawner
	spawnLog        []SpawnRecord
}

// NewSession creates a session in the NotStarted state and loads the high score.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	profile := opts.Skin
	if profile == nil {
		profile = skin.MustLoad("shapes")
	}
	strategy := opts.Collision
	if strategy == nil {
		strategy = collision.BoxStrategy{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := opts.Config
	if reflect.ValueOf(cfg).IsZero() {
		cfg = config.DefaultRunnerConfig()
	} else if err := cfg.Validate(); err != nil {
		logger.Warn("invalid runner config, using defaults", "err", err)
		cfg = config.DefaultRunnerConfig()
	}

	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:             cfg,
		skin:            profile,
		detector:        collision.NewDetector(strategy, cfg.Field.Width, cfg.Field.Height),
		store:           opts.Store,
		logger:          logger,
		onOver:          opts.OnGameOver,
		variant:         opts.Variant,
		seed:            seed,
		rng:             rng,
		speed:           config.NewSpeedController(cfg.Speed),
		player:          NewPlayer(cfg),
		ground:          NewGround(cfg.Field.Width),
		obstacleSpawner: NewSpawner(cfg.Obstacles.MinInterval, cfg.Obstacles.MaxInterval, rng),
		cloudSpawner:    NewSpawner(cfg.Clouds.MinInterval, cfg.Clouds.MaxInterval, rng),
	}

	if s.store != nil {
		hs, err := s.store.Load()
		if err != nil {
			logger.Warn("cannot load high score", "err", err)
		}
		if hs > 0 {
			s.highScore = hs
		}
	}

	logger.Debug("session created", "variant", s.variant, "seed", seed, "skin", profile.Name, "collision", strategy.Name())
	return s
}

// HandleEvent applies one input event. Events that do not apply to the
// current state are ignored.
func (s *Session) HandleEvent(ev core.Event) {
	if ev == core.EventQuit {
		s.quitting = true
		return
	}

	switch s.state {
	case NotStarted:
		if ev == core.EventStart {
			s.state = Playing
			s.logger.Debug("run started", "variant", s.variant)
		}
	case Playing:
		switch ev {
		case core.EventJump:
			s.player.Jump()
		case core.EventDuckPress:
			s.player.SetDucking(true)
		case core.EventDuckRelease:
			s.player.SetDucking(false)
		}
	case GameOver:
		if ev == core.EventRestart {
			s.reset()
			s.state = Playing
			s.logger.Debug("run restarted", "variant", s.variant)
		}
	}
}

// reset reinitializes everything but the high score and the RNG stream.
func (s *Session) reset() {
	s.player = NewPlayer(s.cfg)
	s.obstacles = s.obstacles[:0]
	s.clouds = s.clouds[:0]
	s.ground.Reset()
	s.speed.Reset()
	s.score = 0
	s.ticks = 0
	s.obstacleSpawner.Reset()
	s.cloudSpawner.Reset()
	s.spawnLog = s.spawnLog[:0]
}

// Update advances the world by one tick. Outside Playing the world is frozen.
func (s *Session) Update() {
	if s.state != Playing {
		return
	}
	s.ticks++

	speed := s.speed.Speed()
	s.player.Update()
	s.ground.Update(speed)

	aerialSpeed := s.speed.AerialSpeed()
	for i := range s.obstacles {
		dx := speed
		if s.obstacles[i].Kind == Aerial {
			dx = aerialSpeed
		}
		s.obstacles[i].Move(dx, s.cfg.Obstacles.AnimEvery)
	}

	// Collision runs after movement and before off-screen removal
	if idx, hit := s.detector.FirstHit(s.playerBody(), s.obstacleBodies()); hit {
		s.die(s.obstacles[idx])
		return
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X >= s.cfg.Obstacles.DespawnX {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	if s.obstacleSpawner.Tick() {
		s.spawnObstacle()
	}

	keptClouds := s.clouds[:0]
	for _, c := range s.clouds {
		c.Update()
		if !c.Gone() {
			keptClouds = append(keptClouds, c)
		}
	}
	s.clouds = keptClouds

	if s.cloudSpawner.Tick() {
		s.spawnCloud()
	}

	s.score++
	s.speed.Advance()
}

func (s *Session) die(by Obstacle) {
	s.player.Kill()
	s.state = GameOver

	newHigh := s.score > s.highScore
	if newHigh {
		s.highScore = s.score
		if s.store != nil {
			if err := s.store.Save(s.score); err != nil {
				s.logger.Warn("cannot save high score", "score", s.score, "err", err)
			}
		}
		s.logger.Info("new high score", "variant", s.variant, "score", s.score)
	}
	s.logger.Info("game over", "variant", s.variant, "score", s.score, "ticks", s.ticks, "obstacle", by.Kind)

	if s.onOver != nil {
		s.onOver(RunResult{
			Variant: s.variant,
			Score:   s.score,
			Ticks:   s.ticks,
			Seed:    s.seed,
			NewHigh: newHigh,
		})
	}
}

func (s *Session) spawnObstacle() {
	oc := s.cfg.Obstacles
	ground := s.cfg.Field.GroundY

	var o Obstacle
	if s.score >= oc.AerialScore && s.rng.Float64() < oc.AerialChance {
		alt := oc.AerialAltitudes[s.rng.Intn(len(oc.AerialAltitudes))]
		sp := s.skin.Sprite(skin.Aerial)
		o = Obstacle{Kind: Aerial, Width: sp.Width, Height: sp.Height}
		o.Y = ground - alt - sp.Height
	} else {
		kind := groundKinds[s.rng.Intn(len(groundKinds))]
		sp := s.skin.Sprite(kind.SpriteKey())
		o = Obstacle{Kind: kind, Width: sp.Width, Height: sp.Height}
		o.Y = ground - sp.Height
	}
	o.X = s.cfg.Field.Width

	s.obstacles = append(s.obstacles, o)
	s.spawnLog = append(s.spawnLog, SpawnRecord{Tick: s.ticks, Kind: o.Kind.String(), X: o.X, Y: o.Y})
}

func (s *Session) spawnCloud() {
	cc := s.cfg.Clouds
	c := Cloud{
		X:      s.cfg.Field.Width,
		Y:      uniform(s.rng, cc.MinY, cc.MaxY),
		Speed:  uniform(s.rng, cc.MinSpeed, cc.MaxSpeed),
		Width:  uniform(s.rng, cc.MinWidth, cc.MaxWidth),
		Height: cc.Height,
	}
	s.clouds = append(s.clouds, c)
	s.spawnLog = append(s.spawnLog, SpawnRecord{Tick: s.ticks, Kind: "cloud", X: c.X, Y: c.Y})
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func (s *Session) playerBody() collision.Body {
	sp := s.skin.Sprite(s.player.SpriteKey())
	frame := s.player.AnimFrame()
	return collision.Body{
		Bounds: sp.FrameHitbox(frame, s.player.X, s.player.Y),
		Mask:   sp.Mask(frame),
		Frame:  sp.DrawRect(s.player.X, s.player.Y),
	}
}

func (s *Session) obstacleBodies() []collision.Body {
	bodies := make([]collision.Body, len(s.obstacles))
	for i := range s.obstacles {
		o := &s.obstacles[i]
		sp := s.skin.Sprite(o.Kind.SpriteKey())
		bodies[i] = collision.Body{
			Bounds: sp.FrameHitbox(o.Frame, o.X, o.Bottom()),
			Mask:   sp.Mask(o.Frame),
			Frame:  o.DrawRect(),
		}
	}
	return bodies
}

// State returns the session state.
func (s *Session) State() State { return s.state }

// Quitting reports whether a Quit event was received.
func (s *Session) Quitting() bool { return s.quitting }

// Score returns the score of the current run.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// Speed returns the current game speed.
func (s *Session) Speed() float64 { return s.speed.Speed() }

// Ticks returns the number of playing ticks of the current run.
func (s *Session) Ticks() int { return s.ticks }

// Seed returns the RNG seed.
func (s *Session) Seed() int64 { return s.seed }

// Variant returns the variant id the session was created for.
func (s *Session) Variant() string { return s.variant }

// Skin returns the visual profile.
func (s *Session) Skin() *skin.Profile { return s.skin }

// Config returns the runner configuration.
func (s *Session) Config() config.RunnerConfig { return s.cfg }

// Player returns the player body. Callers must not mutate it.
func (s *Session) Player() *Player { return s.player }

// SpawnLog returns a copy of the spawn log of the current run.
func (s *Session) SpawnLog() []SpawnRecord {
	out := make([]SpawnRecord, len(s.spawnLog))
	copy(out, s.spawnLog)
	return out
}
