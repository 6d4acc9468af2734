package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/codebreaker/internal/config"
	"github.com/vovakirdan/codebreaker/internal/registry"
)

var flagPrintDefaults bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List all available presets",
	Long: `Shows the presets loaded from the presets file.

Presets are read from --config, ~/.codebreaker/presets.yaml or
./configs/presets.yaml, falling back to the built-in set.

Use --defaults to print the built-in presets file as a starting point:
  codebreaker presets --defaults > ~/.codebreaker/presets.yaml`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagPrintDefaults, "defaults", false, "Print the built-in presets file")
}

func runPresets(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	if flagPrintDefaults {
		out.Write(config.DefaultYAML())
		return
	}

	list := registry.List()

	if len(list) == 0 {
		fmt.Fprintln(out, "No presets available.")
		return
	}

	fmt.Fprintln(out, "Available presets:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range list {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %7s  %6s  %5s  %s\n", maxIDLen, "ID", "Colors", "Holes", "Guess", "Duplicates")
	fmt.Fprintf(out, "  %-*s  %7s  %6s  %5s  %s\n", maxIDLen, "--", "------", "-----", "-----", "----------")

	def := presets.DefaultID()
	for _, p := range list {
		dup := "yes"
		if !p.Config.AllowDuplicates {
			dup = "no"
		}
		marker := ""
		if p.ID == def {
			marker = "  (default)"
		}
		fmt.Fprintf(out, "  %-*s  %7d  %6d  %5d  %s%s\n",
			maxIDLen, p.ID, p.Config.Colors, p.Config.Holes, p.Config.MaxGuesses, dup, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'codebreaker --preset <id>' to play a preset.")
}
