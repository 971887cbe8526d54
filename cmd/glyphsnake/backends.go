package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-snake/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available terminal backends",
	Long:  `Shows a list of all terminal backends the game can be played on.`,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	hosts := registry.List()

	if len(hosts) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, h := range hosts {
		if len(h.Name) > maxNameLen {
			maxNameLen = len(h.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, h := range hosts {
		fmt.Printf("  %-*s  %s\n", maxNameLen, h.Name, h.Description)
	}

	fmt.Println()
	fmt.Println("Run 'glyphsnake play --backend <name>' to use one.")
}
