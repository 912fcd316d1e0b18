// Package term is a line-oriented front end: it reads single-letter commands
// and prints the board after each of them.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Yxrk845/Buscaminas/internal/game"
	"github.com/Yxrk845/Buscaminas/internal/ui/layout"
)

const help = "commands: p play, o ROW COL open, f ROW COL flag, a random move, n new game, m menu, g redraw, q quit"

type Session struct {
	logger *slog.Logger
	ctrl   *game.Controller
	in     io.Reader
	out    io.Writer
}

func New(logger *slog.Logger, ctrl *game.Controller, in io.Reader, out io.Writer) *Session {
	return &Session{logger: logger, ctrl: ctrl, in: in, out: out}
}

// Execute applies one command line. Bad input is reported as an error and
// leaves the game untouched. The quit command yields [game.ErrQuit].
func (s *Session) Execute(line string) error {
	e, ok, err := parseCommand(line)
	if err != nil || !ok {
		return err
	}
	if e.Kind != game.ButtonPress {
		if s.ctrl.Screen() != game.BoardScreen {
			return errNoBoard
		}
		if n := s.ctrl.Size(); e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			return errOutOfBounds
		}
	}
	return s.ctrl.HandleEvent(e)
}

// Render writes the current screen.
func (s *Session) Render() error {
	var err error
	if s.ctrl.Screen() == game.MenuScreen {
		_, err = fmt.Fprintf(s.out,
			"%s\n  p) %s\n  q) %s\n",
			layout.Title, layout.PlayButton.Label, layout.QuitButton.Label,
		)
		return err
	}
	status := layout.StatusText(s.ctrl.State())
	if !s.ctrl.State().Over() {
		status = fmt.Sprintf("%s  minas: %d", status, s.ctrl.MinesRemaining())
	}
	_, err = fmt.Fprintf(s.out, "%s%s\n", s.ctrl.String(), status)
	return err
}

// Run reads commands until the input ends, the player quits or ctx is done.
// Leaving through the quit command or end of input is not an error. The
// reader goroutine is released when Run returns, unless it is blocked in a
// read of the input itself.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	if _, err := fmt.Fprintln(s.out, help); err != nil {
		return err
	}
	if err := s.Render(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			if line == "" {
				continue
			}
			err := s.Execute(line)
			if errors.Is(err, game.ErrQuit) {
				s.logger.Info("player quit")
				return nil
			}
			if err != nil {
				s.logger.Debug("rejected command", slog.String("line", line), slog.Any("error", err))
				if _, err := fmt.Fprintf(s.out, "error: %s\n", err); err != nil {
					return err
				}
				continue
			}
			if err := s.Render(); err != nil {
				return err
			}
		}
	}
}
