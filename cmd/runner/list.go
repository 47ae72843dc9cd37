package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered variant with its skin and collision strategy.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Title", "Skin / Collision")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "-----", "----------------")
	for _, v := range variants {
		fmt.Printf("  %-*s  %-22s  %s / %s\n", maxIDLen, v.ID, v.Title, v.Skin, v.Collision)
	}

	fmt.Println()
	fmt.Println("Run 'runner play <id>' to play a variant.")
}
