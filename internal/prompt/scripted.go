package prompt

import (
	"fmt"

	oerrors "github.com/pfgen/cli/internal/errors"
)

// Answer is one canned reply for Scripted. Cancel simulates a dismissed prompt.
type Answer struct {
	Value  string
	Cancel bool
}

// Scripted replays canned answers in order. It is used where no terminal is
// attached, chiefly in tests.
type Scripted struct {
	Answers []Answer

	// Asked records the title of every question, in order.
	Asked []string
}

// NewScripted returns a Scripted prompter that answers with values in order.
func NewScripted(values ...string) *Scripted {
	s := &Scripted{}
	for _, v := range values {
		s.Answers = append(s.Answers, Answer{Value: v})
	}
	return s
}

// Select implements Prompter. The answer must be one of the option values.
func (s *Scripted) Select(title string, options []Option) (string, error) {
	a, err := s.next(title)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if o.Value == a {
			return a, nil
		}
	}
	return "", fmt.Errorf("select %q: %q is not an option", title, a)
}

// Input implements Prompter.
func (s *Scripted) Input(title, _ string) (string, error) {
	return s.next(title)
}

func (s *Scripted) next(title string) (string, error) {
	s.Asked = append(s.Asked, title)
	if len(s.Answers) == 0 {
		return "", fmt.Errorf("prompt %q: no scripted answer left", title)
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	if a.Cancel {
		return "", oerrors.ErrCancelled
	}
	return a.Value, nil
}
