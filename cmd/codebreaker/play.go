package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/codebreaker/internal/core"
	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
	"github.com/vovakirdan/codebreaker/internal/platform/tui"
	"github.com/vovakirdan/codebreaker/internal/storage"
)

const debugLogFile = "codebreaker-debug.log"

func runPlay(cmd *cobra.Command, _ []string) error {
	preset, err := resolvePreset(cmd)
	if err != nil {
		return err
	}
	logger.Debug("playing", "preset", preset.ID, "config", fmt.Sprintf("%+v", preset.Config))

	// Without a terminal on both ends, fall back to the line-oriented session.
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlain(cmd.Context(), preset, os.Stdin, os.Stdout)
	}

	ledger := openLedger()
	if ledger != nil {
		defer ledger.Close()
	}

	tuiLogger, closeLog := newTUILogger()
	defer closeLog()

	res, err := tui.Run(tui.Options{
		Preset:  preset,
		Runtime: runtimeConfig(),
		Ledger:  ledger,
		Logger:  tuiLogger,
	})
	if err != nil {
		return err
	}

	printFinal(os.Stdout, res.Final)
	if res.Rounds > 1 && ledger != nil {
		printStats(os.Stdout, ledger, preset.ID)
	}
	return nil
}

// runtimeConfig returns the terminal size and the seed flag.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openLedger opens the in-memory round ledger. Play continues without it
// when it cannot be opened.
func openLedger() *storage.Ledger {
	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round ledger", "error", err)
		return nil
	}
	return ledger
}

// newTUILogger returns a logger that does not write over the alternate
// screen. Debug logs go to a file in the working directory, anything else is
// discarded while the TUI runs.
func newTUILogger() (*log.Logger, func()) {
	if logger.GetLevel() > log.DebugLevel {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("could not open debug log", "path", debugLogFile, "error", err)
		return log.New(io.Discard), func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "codebreaker",
		Level:           log.DebugLevel,
	})
	return l, func() { f.Close() }
}

// printFinal draws the board once more after the TUI has closed.
func printFinal(w io.Writer, snap codebreaker.Snapshot) {
	width, height := codebreaker.BoardSize(snap.Config)
	screen := core.NewScreen(width, height)
	codebreaker.Render(screen, snap)

	fmt.Fprintln(w, tui.RenderScreen(screen))
	switch {
	case snap.Status == codebreaker.StatusWon:
		fmt.Fprintf(w, "\nSolved in %d of %d guesses.\n", len(snap.Rows), snap.Config.MaxGuesses)
	case snap.Revealed():
		fmt.Fprintf(w, "\nThe code was %s.\n", snap.Solution)
	default:
		fmt.Fprintln(w, "\nRound abandoned.")
	}
}

// printStats prints a summary of the rounds played with the preset.
func printStats(w io.Writer, ledger *storage.Ledger, presetID string) {
	st, err := ledger.Stats(presetID)
	if err != nil {
		logger.Warn("could not read round stats", "error", err)
		return
	}
	fmt.Fprintf(w, "This session: %d played, %d won", st.Played, st.Won)
	if st.Won > 0 {
		fmt.Fprintf(w, ", best %d guesses", st.BestGuesses)
	}
	fmt.Fprintln(w)
}

// printSummary prints one line per preset played in this run.
func printSummary(w io.Writer, ledger *storage.Ledger) {
	if ledger == nil {
		return
	}
	all, err := ledger.AllStats()
	if err != nil {
		logger.Warn("could not read round stats", "error", err)
		return
	}
	if len(all) == 0 {
		return
	}

	fmt.Fprintln(w, "This session:")
	for _, st := range all {
		fmt.Fprintf(w, "  %-10s %d played, %d won", st.Preset, st.Played, st.Won)
		if st.Won > 0 {
			fmt.Fprintf(w, ", best %d guesses", st.BestGuesses)
		}
		fmt.Fprintln(w)
	}
}
