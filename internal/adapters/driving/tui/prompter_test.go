package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_ConfirmRoundTrip(t *testing.T) {
	p := NewPrompter()

	type result struct {
		answer bool
		err    error
	}
	done := make(chan result, 1)
	go func() {
		answer, err := p.Confirm(context.Background(), "Delete /x?")
		done <- result{answer, err}
	}()

	select {
	case req := <-p.Requests():
		assert.Equal(t, "Delete /x?", req.Prompt)
		req.Reply <- true
	case <-time.After(2 * time.Second):
		t.Fatal("no confirm request received")
	}

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.True(t, res.answer)
	case <-time.After(2 * time.Second):
		t.Fatal("Confirm did not return")
	}
}

func TestPrompter_Declined(t *testing.T) {
	p := NewPrompter()

	done := make(chan bool, 1)
	go func() {
		answer, _ := p.Confirm(context.Background(), "Delete /x?")
		done <- answer
	}()

	req := <-p.Requests()
	req.Reply <- false

	assert.False(t, <-done)
}

func TestPrompter_CancelledContext(t *testing.T) {
	p := NewPrompter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nobody reads requests, so Confirm can only exit via the context.
	answer, err := p.Confirm(ctx, "Delete /x?")

	assert.False(t, answer)
	assert.ErrorIs(t, err, context.Canceled)
}
