package codebreaker

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Session applies commands from a channel to a single game.
// It is the only goroutine that touches the game, so input capture can run
// elsewhere and hand commands over in the order the player issued them.
type Session struct {
	game   *Game
	logger *log.Logger
}

// NewSession creates a session for the game. A nil logger discards output.
func NewSession(game *Game, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:   game,
		logger: logger,
	}
}

// Run consumes commands until the round ends, a quit command arrives, the
// channel is closed, or ctx is cancelled.
//
// observe, if not nil, receives a settled snapshot before the first command
// and after every command, never while a command is being applied.
func (s *Session) Run(ctx context.Context, cmds <-chan Command, observe func(Snapshot)) (Status, error) {
	notify := func() {
		if observe != nil {
			observe(s.game.Snapshot())
		}
	}

	notify()
	for {
		if status := s.game.Status(); status.Terminal() {
			s.logger.Debug("round finished", "status", status, "guesses", s.game.Submitted())
			return status, nil
		}

		select {
		case <-ctx.Done():
			return s.game.Status(), ctx.Err()

		case cmd, ok := <-cmds:
			if !ok {
				s.logger.Debug("input closed")
				return s.game.Status(), nil
			}
			if cmd.Kind == CommandQuit {
				s.logger.Debug("quit requested")
				return s.game.Status(), nil
			}

			changed := s.game.Apply(cmd)
			s.logger.Debug("command applied", "command", cmd, "changed", changed)
			notify()
		}
	}
}

// ReadCommands decodes raw bytes from r and sends the resulting commands to
// out in order. Bytes that are not commands are skipped. out is closed when r
// is exhausted or ctx is cancelled.
func ReadCommands(ctx context.Context, r io.Reader, out chan<- Command) error {
	defer close(out)

	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		cmd, ok := DecodeKey(b)
		if !ok {
			continue
		}

		select {
		case out <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
