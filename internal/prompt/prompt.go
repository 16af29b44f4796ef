// Package prompt asks the user for the values a generator needs.
//
// Every question is a cancellable step: dismissing a prompt yields
// errors.ErrCancelled and the caller stops without side effects.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	oerrors "github.com/pfgen/cli/internal/errors"
)

// Option is one choice offered by Select.
type Option struct {
	Label string
	Value string
}

// Prompter asks single questions.
type Prompter interface {
	// Select offers a fixed list of choices and returns the chosen Value.
	Select(title string, options []Option) (string, error)

	// Input asks for free text. An empty answer is returned as "".
	Input(title, placeholder string) (string, error)
}

// Huh is a Prompter backed by huh forms on the terminal.
type Huh struct {
	// Accessible renders prompts without a TUI, for screen readers.
	Accessible bool
}

// NewHuh returns the terminal Prompter.
func NewHuh() *Huh {
	return &Huh{}
}

// Select implements Prompter.
func (h *Huh) Select(title string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", title)
	}

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	var value string
	field := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&value)

	if err := h.run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Input implements Prompter.
func (h *Huh) Input(title, placeholder string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)

	if err := h.run(field); err != nil {
		return "", err
	}
	return value, nil
}

func (h *Huh) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithAccessible(h.Accessible).
		Run()
	return mapAbort(err)
}

// mapAbort turns a dismissed prompt into ErrCancelled.
func mapAbort(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, huh.ErrTimeout) {
		return oerrors.ErrCancelled
	}
	return fmt.Errorf("prompt: %w", err)
}
