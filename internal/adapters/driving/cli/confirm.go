package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
)

// Ensure stdinConfirmer implements the interface.
var _ driven.Confirmer = (*stdinConfirmer)(nil)

// stdinConfirmer asks a y/N question on the terminal. Anything other
// than an explicit yes declines.
type stdinConfirmer struct {
	in        io.Reader
	out       io.Writer
	assumeYes bool
}

func newStdinConfirmer(in io.Reader, out io.Writer, assumeYes bool) *stdinConfirmer {
	return &stdinConfirmer{in: in, out: out, assumeYes: assumeYes}
}

// Confirm implements driven.Confirmer.
func (c *stdinConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}

	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(c.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// EOF with no input declines.
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
