package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/vovakirdan/codebreaker/internal/core"
	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
	"github.com/vovakirdan/codebreaker/internal/registry"
)

// runPlain plays one round reading raw key bytes from in and printing the
// board to out after every submitted guess. It is used when there is no
// terminal to drive the TUI, e.g. with piped input.
func runPlain(ctx context.Context, preset registry.Preset, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := codebreaker.New(preset.Config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	width, height := codebreaker.BoardSize(preset.Config)
	screen := core.NewScreen(width, height)
	printed := -1
	observe := func(snap codebreaker.Snapshot) {
		if len(snap.Rows) == printed {
			return
		}
		printed = len(snap.Rows)
		codebreaker.Render(screen, snap)
		fmt.Fprintf(out, "%s\n\n", screen)
	}

	cmds := make(chan codebreaker.Command)
	readErr := make(chan error, 1)
	readCtx, cancelRead := context.WithCancel(ctx)
	defer cancelRead()
	go func() {
		readErr <- codebreaker.ReadCommands(readCtx, in, cmds)
	}()

	status, err := codebreaker.NewSession(game, logger).Run(ctx, cmds, observe)
	cancelRead()
	if err != nil {
		return err
	}

	select {
	case err := <-readErr:
		if err != nil && ctx.Err() == nil {
			logger.Warn("input error", "error", err)
		}
	default:
		// Still blocked on a read; the process is about to exit.
	}

	snap := game.Snapshot()
	switch {
	case status == codebreaker.StatusWon:
		fmt.Fprintf(out, "Solved in %d of %d guesses.\n", len(snap.Rows), preset.Config.MaxGuesses)
	case snap.Revealed():
		fmt.Fprintf(out, "Out of guesses. The code was %s.\n", snap.Solution)
	default:
		fmt.Fprintln(out, "Round abandoned.")
	}
	logger.Debug("plain session finished", "status", status, "guesses", len(snap.Rows))
	return nil
}
