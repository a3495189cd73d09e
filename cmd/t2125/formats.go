package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gigtax/t2125-calculator/internal/output"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available report output formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Formats:", strings.Join(output.AvailableFormatterNames(), ", "))
		fmt.Println("Aliases:", strings.Join(output.AvailableFormatAliases(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
