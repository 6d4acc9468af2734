// codebreaker is a terminal code-breaking game: guess the hidden color
// sequence from bull and cow hints.
//
// Usage:
//
//	codebreaker              - Play a round with the default preset
//	codebreaker presets      - List available presets
//	codebreaker menu         - Pick presets interactively and replay
//
// Game flags (root command only):
//
//	--colors, -c <n>    - Number of colors (default: 6)
//	--guesses, -g <n>   - Guesses allowed (default: 8)
//	--holes, -H <n>     - Holes per row (default: 4)
//	--no-duplicate      - Solution never repeats a color
//
// Global flags:
//
//	--preset <id>       - Start from a named preset (default: from presets file)
//	--config <path>     - Presets YAML file
//	--seed <value>      - Set RNG seed for a reproducible solution
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/codebreaker/internal/config"
	"github.com/vovakirdan/codebreaker/internal/registry"
)

var (
	// Game flags
	flagColors      int
	flagGuesses     int
	flagHoles       int
	flagNoDuplicate bool

	// Global flags
	flagPreset   string
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

// Loaded once in setup, before any command runs.
var (
	logger  *log.Logger
	presets config.PresetFile
	envCfg  config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codebreaker",
	Short: "Codebreaker - crack the hidden color code in your terminal",
	Long: `Codebreaker is a terminal game of logic. A hidden sequence of colored
pegs is drawn at random. Enter guesses with the number keys; each guess is
scored with red pegs (right color, right hole) and white pegs (right color,
wrong hole). Crack the code before you run out of guesses.

Controls:
  1-9              - Select a color
  Backspace/Ctrl+Z - Undo the last color
  Enter/Space      - Submit the guess
  R                - New round (after the round ends)
  Q/Esc/Ctrl+C     - Quit

Settings are taken from the preset, then CODEBREAKER_* environment
variables, then flags.

Examples:
  codebreaker
  codebreaker --preset hard
  codebreaker -c 7 -H 5 --no-duplicate
  CODEBREAKER_GUESSES=12 codebreaker
  codebreaker presets
  codebreaker menu`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	defaults := config.DefaultPresets().Presets[0].GameConfig()

	// Game parameters only apply to the single round played by the root command.
	game := rootCmd.Flags()
	game.IntVarP(&flagColors, "colors", "c", defaults.Colors, "Number of colors in play")
	game.IntVarP(&flagGuesses, "guesses", "g", defaults.MaxGuesses, "Number of guesses allowed")
	game.IntVarP(&flagHoles, "holes", "H", defaults.Holes, "Number of holes per row")
	game.BoolVar(&flagNoDuplicate, "no-duplicate", !defaults.AllowDuplicates, "Never repeat a color in the solution")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagPreset, "preset", "", "Preset to start from (see 'codebreaker presets')")
	flags.StringVar(&flagConfig, "config", "", "Path to a presets YAML file")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(menuCmd)
}

// setup loads the environment, the logger and the presets.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	envCfg, err = config.LoadEnv()
	if err != nil {
		return err
	}

	level := flagLogLevel
	if !cmd.Flags().Changed("log-level") && envCfg.LogLevel != "" {
		level = envCfg.LogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "codebreaker",
		Level:           lvl,
	})

	presets, err = config.LoadPresets(flagConfig)
	if err != nil {
		return err
	}
	for _, p := range presets.Presets {
		registry.Register(registry.Preset{
			ID:     p.ID,
			Title:  p.Title,
			Config: p.GameConfig(),
		})
	}
	logger.Debug("presets loaded", "count", len(presets.Presets), "default", presets.DefaultID())

	return nil
}

// flagOverrides collects the game flags the user actually set.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("colors") {
		o.Colors = &flagColors
	}
	if flags.Changed("guesses") {
		o.Guesses = &flagGuesses
	}
	if flags.Changed("holes") {
		o.Holes = &flagHoles
	}
	if flags.Changed("no-duplicate") {
		o.NoDuplicate = &flagNoDuplicate
	}
	return o
}

// resolvePreset builds the preset to play from the presets file, the
// environment and the flags. A configuration that no longer matches its
// preset is played as "custom".
func resolvePreset(cmd *cobra.Command) (registry.Preset, error) {
	p, cfg, err := config.Resolve(presets, config.Request{
		Preset: flagPreset,
		Env:    envCfg,
		Flags:  flagOverrides(cmd),
	})
	if err != nil {
		return registry.Preset{}, err
	}

	if config.Customized(p, cfg) {
		return registry.Preset{ID: "custom", Title: "Custom", Config: cfg}, nil
	}
	if !registry.Exists(p.ID) {
		return registry.Preset{}, fmt.Errorf("preset %q is not registered", p.ID)
	}
	return registry.Preset{ID: p.ID, Title: p.Title, Config: cfg}, nil
}
