package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/codebreaker/internal/platform/tui"
	"github.com/vovakirdan/codebreaker/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick presets from an interactive menu",
	Long: `Start codebreaker in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a preset.
After a round ends, press R for another round or B to return to the menu.
Rounds played in this session are listed on the scoreboard (Tab) and
summarized when the menu exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play preset
  Tab          - Scoreboard
  Q            - Quit

Examples:
  codebreaker menu
  codebreaker menu --config ./my-presets.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	ledger := openLedger()
	if ledger != nil {
		defer ledger.Close()
	}
	defer printSummary(cmd.OutOrStdout(), ledger)

	tuiLogger, closeLog := newTUILogger()
	defer closeLog()

	cfg := runtimeConfig()
	initial := flagPreset
	if initial == "" {
		initial = presets.DefaultID()
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, initial)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(ledger, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		preset, err := registry.Get(menuResult.PresetID)
		if err != nil {
			return err
		}
		initial = preset.ID

		res, err := tui.Run(tui.Options{
			Preset:    preset,
			Runtime:   cfg,
			Ledger:    ledger,
			Logger:    tuiLogger,
			AllowBack: true,
		})
		if err != nil {
			return err
		}
		if !res.Back {
			printFinal(cmd.OutOrStdout(), res.Final)
			return nil
		}
	}
}
