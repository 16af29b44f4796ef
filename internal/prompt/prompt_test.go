package prompt

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pfgen/cli/internal/errors"
)

var languages = []Option{
	{Label: "JavaScript", Value: "javascript"},
	{Label: "TypeScript", Value: "typescript"},
}

func TestMapAbort(t *testing.T) {
	assert.NoError(t, mapAbort(nil))
	assert.ErrorIs(t, mapAbort(huh.ErrUserAborted), oerrors.ErrCancelled)
	assert.ErrorIs(t, mapAbort(huh.ErrTimeout), oerrors.ErrCancelled)

	other := errors.New("tty gone")
	err := mapAbort(other)
	assert.ErrorIs(t, err, other)
	assert.False(t, oerrors.IsCancelled(err))
}

func TestHuhSelectRequiresOptions(t *testing.T) {
	_, err := NewHuh().Select("Language", nil)
	assert.Error(t, err)
}

func TestScripted(t *testing.T) {
	s := NewScripted("typescript", "UserCard")

	lang, err := s.Select("Select language", languages)
	require.NoError(t, err)
	assert.Equal(t, "typescript", lang)

	name, err := s.Input("Component name", "e.g. UserCard")
	require.NoError(t, err)
	assert.Equal(t, "UserCard", name)

	assert.Equal(t, []string{"Select language", "Component name"}, s.Asked)

	_, err = s.Input("extra", "")
	assert.Error(t, err)
}

func TestScriptedCancel(t *testing.T) {
	s := &Scripted{Answers: []Answer{{Cancel: true}}}

	_, err := s.Select("Select language", languages)
	assert.True(t, oerrors.IsCancelled(err))
}

func TestScriptedSelectRejectsUnknownValue(t *testing.T) {
	s := NewScripted("coffeescript")

	_, err := s.Select("Select language", languages)
	assert.Error(t, err)
}
