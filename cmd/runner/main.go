// runner is an endless runner for the terminal.
//
// Usage:
//
//	runner list                - List available variants
//	runner play <variant>      - Play a variant
//	runner menu                - Pick variants interactively
//	runner simulate <variant>  - Run a headless, reproducible simulation
//	runner scores <variant>    - Show the best recorded runs
//	runner board               - Browse recorded runs per variant
//	runner serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Runner config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Run history database (default: ~/.runner/runs.db)
//	--highscore <path>   - High score JSON file for --store file
//	--store <kind>       - High score store: sqlite, file or profile
//	--log-file <path>    - Write logs of interactive commands to a file
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagHighScore  string
	flagStore      string
	flagLogFile    string
)

// envFlags lists the flags that may be defaulted from the environment.
var envFlags = map[string]string{
	"db":        "RUNNER_DB",
	"highscore": "RUNNER_HIGHSCORE",
	"store":     "RUNNER_STORE",
	"seed":      "RUNNER_SEED",
	"fps":       "RUNNER_FPS",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - an endless runner in your terminal",
	Long: `Runner is an endless side-scrolling runner for the terminal.
Jump over ground obstacles, duck under the flying ones, and beat your
high score. Three variants reskin the same game: classic, sprites and pixel.

Available commands:
  list      - Show all variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  simulate  - Headless simulation from a seed and an event trace
  scores    - Best recorded runs of a variant
  board     - Browse recorded runs
  serve     - Start SSH server for remote play

Examples:
  runner play classic
  runner play pixel --difficulty hard
  runner simulate sprites --seed 42 --ticks 2000
  runner serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to run history database")
	pf.StringVar(&flagHighScore, "highscore", "~/.runner/highscore.json", "High score file for --store file")
	pf.StringVar(&flagStore, "store", storeSQLite, "High score store: sqlite, file, profile")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnv loads .env (if any) and fills flags not given on the command
// line from RUNNER_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // .env is optional
	godotenv.Load()

	for name, env := range envFlags {
		val, ok := os.LookupEnv(env)
		if !ok || val == "" {
			continue
		}
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(val); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}

	switch flagStore {
	case storeSQLite, storeFile, storeProfile:
	default:
		return fmt.Errorf("unknown high score store %q (want sqlite, file or profile)", flagStore)
	}
	return nil
}
