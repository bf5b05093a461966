package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemswap/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows the board variants that can be played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-7s  %s\n", maxIDLen, "ID", "Size", "Symbols", "Title")
	fmt.Printf("  %-*s  %-5s  %-7s  %s\n", maxIDLen, "--", "----", "-------", "-----")
	for _, v := range variants {
		size := fmt.Sprintf("%dx%d", v.GridSize, v.GridSize)
		fmt.Printf("  %-*s  %-5s  %-7d  %s\n", maxIDLen, v.ID, size, v.AlphabetSize, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gemswap play <id>' to play a board.")
}
