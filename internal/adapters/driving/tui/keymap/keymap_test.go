package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.Back.Keys(), "esc")
	assert.Contains(t, km.ToggleSelect.Keys(), " ")
	assert.Contains(t, km.NextPage.Keys(), "right")
	assert.Contains(t, km.PrevPage.Keys(), "left")
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("up", km.Up))
	assert.False(t, Matches("j", km.Up))
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.InputHelp())
	assert.NotEmpty(t, km.ResultsHelp())
}
