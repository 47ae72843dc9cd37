package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a game over, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Recorded runs
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	launcher := newLauncher(cfg, store, logger)
	width, height := terminalSize()

	for {
		res, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		width, height = res.Width, res.Height

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case res.VariantID != "":
			goBack, err := tui.Run(launcher, res.VariantID, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
