package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/highscore"
	"github.com/vovakirdan/tui-runner/internal/loop"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	flagTicks     int
	flagTrace     string
	flagSpawns    bool
	flagHighStart int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <variant>",
	Short: "Run a headless simulation",
	Long: `Run a variant without a terminal for a number of ticks and print
the final state as YAML. The same seed and trace always give the same output.

A trace file holds one event per line as "<tick> <event>", applied before
that tick's update. Events: start, jump, duck_down, duck_up, restart, quit.
Lines starting with # are ignored. Without a trace the run starts at tick 0.

Examples:
  runner simulate classic --seed 7 --ticks 3000
  runner simulate pixel --seed 7 --trace ./jumps.txt --spawns`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of ticks to run")
	simulateCmd.Flags().StringVar(&flagTrace, "trace", "", "Event trace file")
	simulateCmd.Flags().BoolVar(&flagSpawns, "spawns", false, "Include the spawn log in the output")
	simulateCmd.Flags().IntVar(&flagHighStart, "high-score", 0, "Initial high score")
}

// simulation is the YAML output of the simulate command.
type simulation struct {
	Seed     int64                `yaml:"seed"`
	Ticks    int                  `yaml:"ticks"`
	Runs     []runner.RunResult   `yaml:"runs,omitempty"`
	Final    runner.Snapshot      `yaml:"final"`
	SpawnLog []runner.SpawnRecord `yaml:"spawn_log,omitempty"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	variant := args[0]
	if err := checkVariant(variant); err != nil {
		return err
	}
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	trace := traceEvents{core.EventStart}.at(0)
	if flagTrace != "" {
		f, err := os.Open(flagTrace)
		if err != nil {
			return fmt.Errorf("cannot open trace: %w", err)
		}
		trace, err = parseTrace(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	out := simulation{}
	session, err := runner.NewVariantSession(variant, runner.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  &highscore.Memory{Score: flagHighStart},
		Logger: logger,
		OnGameOver: func(res runner.RunResult) {
			out.Runs = append(out.Runs, res)
		},
	})
	if err != nil {
		return err
	}

	src := &traceSource{trace: trace}
	driver := loop.New(session, loop.WithEvents(src), loop.WithLogger(logger))
	for driver.Ticks() < flagTicks && driver.Step() {
	}

	out.Seed = session.Seed()
	out.Ticks = driver.Ticks()
	out.Final = session.Snapshot()
	if flagSpawns {
		out.SpawnLog = session.SpawnLog()
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

// traceEvents are the events applied before one tick, in order.
type traceEvents []core.Event

func (e traceEvents) at(tick int) map[int]traceEvents {
	return map[int]traceEvents{tick: e}
}

// parseTrace reads "<tick> <event>" lines.
func parseTrace(r io.Reader) (map[int]traceEvents, error) {
	trace := make(map[int]traceEvents)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("trace line %d: want \"<tick> <event>\", got %q", line, text)
		}
		tick, err := strconv.Atoi(fields[0])
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("trace line %d: bad tick %q", line, fields[0])
		}
		ev, err := core.ParseEvent(fields[1])
		if err != nil {
			return nil, fmt.Errorf("trace line %d: %w", line, err)
		}
		trace[tick] = append(trace[tick], ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read trace: %w", err)
	}
	return trace, nil
}

// traceSource replays a trace, one tick per Drain.
type traceSource struct {
	trace map[int]traceEvents
	tick  int
}

func (s *traceSource) Drain() []core.Event {
	events := s.trace[s.tick]
	s.tick++
	return events
}
