package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Space/Up/W  - Start, jump, restart after game over
  Down/S      - Duck (hold)
  R/Enter     - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy    - Start slower, speed keeps growing
  normal  - Default start speed
  hard    - Start faster
  fixed   - Speed never changes

Examples:
  runner play classic
  runner play pixel --difficulty hard
  runner play sprites --store file --highscore ./hs.json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := args[0]
	if err := checkVariant(variant); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	_, err = tui.Run(newLauncher(cfg, store, logger), variant, width, height)
	return err
}
