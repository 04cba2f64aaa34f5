package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgetCmd_Use(t *testing.T) {
	assert.Equal(t, "forget [path]", forgetCmd.Use)
}

func TestForgetCmd_WithYesFlag(t *testing.T) {
	idx := &stubIndex{}
	_, _, cleanup := setupTestServices(idx)
	defer cleanup()
	defer func() { forgetYes = false }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"forget", "/docs/old.txt", "--yes"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"/docs/old.txt"}, idx.removed)
}

func TestForgetCmd_ConfirmedOnStdin(t *testing.T) {
	idx := &stubIndex{}
	_, _, cleanup := setupTestServices(idx)
	defer cleanup()
	defer func() { forgetYes = false }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("y\n"))
	rootCmd.SetArgs([]string{"forget", "/docs/old.txt"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[y/N]")
	assert.Equal(t, []string{"/docs/old.txt"}, idx.removed)
}

func TestForgetCmd_DeclinedIsSilentNoOp(t *testing.T) {
	idx := &stubIndex{}
	_, _, cleanup := setupTestServices(idx)
	defer cleanup()
	defer func() { forgetYes = false }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("n\n"))
	rootCmd.SetArgs([]string{"forget", "/docs/old.txt"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Empty(t, idx.removed)
}
