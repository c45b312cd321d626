// Package cli internal/infrastructure/cli/menu.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/middleware"
)

// State is the state of a menu loop
type State int

const (
	// AwaitingChoice is the only running state
	AwaitingChoice State = iota
	// Stopped is entered by an exit option or the end of input
	Stopped
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "awaiting_choice"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Action runs a menu option. Returning io.EOF stops the menu.
type Action func(ctx context.Context) error

// Option is a numbered menu entry
type Option struct {
	Label  string
	Action Action
	Exit   bool
}

// Menu reads numeric choices and dispatches them to options until an exit
// option is chosen or input ends
type Menu struct {
	header   []string
	options  []Option
	prompter *Prompter
	out      io.Writer
	logger   logger.Logger
	state    State
}

// NewMenu creates a menu. Header lines are printed before the options on every iteration.
func NewMenu(prompter *Prompter, out io.Writer, log logger.Logger, header []string, options ...Option) *Menu {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &Menu{
		header:   header,
		options:  options,
		prompter: prompter,
		out:      out,
		logger:   log,
		state:    AwaitingChoice,
	}
}

// State returns the current state
func (m *Menu) State() State {
	return m.state
}

// Run loops until the menu stops or ctx is cancelled
func (m *Menu) Run(ctx context.Context) error {
	for m.state == AwaitingChoice {
		if err := ctx.Err(); err != nil {
			m.stop("context_done")
			return err
		}
		if err := m.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step prints the menu, reads one choice and runs it
func (m *Menu) Step(ctx context.Context) error {
	if m.state == Stopped {
		return nil
	}

	for _, line := range m.header {
		if line == "" {
			fmt.Fprintln(m.out)
			continue
		}
		headingStyle.Fprintln(m.out, line)
	}
	for i, o := range m.options {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, o.Label)
	}

	input, err := m.prompter.Ask("Enter your choice: ")
	switch {
	case errors.Is(err, io.EOF):
		m.stop("end_of_input")
		return nil
	case errors.Is(err, ErrLineTooLong):
		input = ""
	case err != nil:
		return err
	}

	option, ok := m.choose(input)
	if !ok {
		m.logger.Debug("Invalid menu choice", map[string]interface{}{
			"input": input,
		})
		errorStyle.Fprintln(m.out, "Invalid choice. Please try again.")
		return nil
	}

	ctx = middleware.WithRequestID(ctx, "")
	m.logger.Debug("Menu option selected", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"option":     option.Label,
	})

	if option.Action != nil {
		if err := option.Action(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				m.stop("end_of_input")
				return nil
			}
			errorStyle.Fprintf(m.out, "Error: %v\n", err)
		}
	}

	if option.Exit {
		m.stop("exit_option")
	}
	return nil
}

func (m *Menu) choose(input string) (Option, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(m.options) {
		return Option{}, false
	}
	return m.options[n-1], true
}

func (m *Menu) stop(reason string) {
	m.state = Stopped
	m.logger.Debug("Menu stopped", map[string]interface{}{
		"reason": reason,
	})
}
