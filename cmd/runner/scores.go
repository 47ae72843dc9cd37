package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the best runs of a variant",
	Long: `Display the best recorded runs of the specified variant.

Examples:
  runner scores classic
  runner scores pixel --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse recorded runs",
	Long:  `Interactive table of the best runs, one page per variant.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		width, height := terminalSize()
		_, err = tui.RunScoreboard(store, width, height)
		return err
	},
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	id := args[0]
	v, err := registry.Get(id)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(id, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", v.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to record the first one!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "Rank", "Score", "Ticks", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-20d  %s\n", i+1, r.Score, r.Ticks, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(id); err == nil {
		fmt.Printf("High score: %d\n", best)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return nil
}
