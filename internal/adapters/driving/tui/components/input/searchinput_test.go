package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchInput(t *testing.T) {
	in := NewSearchInput(nil)

	require.NotNil(t, in)
	assert.True(t, in.Focused())
	assert.Empty(t, in.Value())
}

func TestSearchInput_Typing(t *testing.T) {
	in := NewSearchInput(nil)

	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("report")})

	assert.Equal(t, "report", in.Value())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	in := NewSearchInput(nil)

	in.Blur()
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
}

func TestSearchInput_SetWidth_Minimum(t *testing.T) {
	in := NewSearchInput(nil)

	in.SetWidth(10)

	assert.Equal(t, 10, in.Width())
}

func TestSearchInput_Reset(t *testing.T) {
	in := NewSearchInput(nil)
	in.SetValue("query")

	in.Reset()

	assert.Empty(t, in.Value())
}
