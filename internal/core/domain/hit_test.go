package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHit_UnmarshalPreservesUnknownFields(t *testing.T) {
	data := []byte(`{
		"path": "/docs/report.pdf",
		"name": "report.pdf",
		"size": 2048,
		"mime": "application/pdf",
		"snippet": "quarterly figures",
		"ocr_confidence": 0.92,
		"labels": ["finance", "2026"]
	}`)

	var h Hit
	require.NoError(t, json.Unmarshal(data, &h))

	assert.Equal(t, "/docs/report.pdf", h.Path)
	assert.Equal(t, "report.pdf", h.Name)
	assert.Equal(t, 0.92, h.Extra["ocr_confidence"])
	assert.Equal(t, []any{"finance", "2026"}, h.Extra["labels"])
}

func TestHit_UnmarshalMissingFields(t *testing.T) {
	var h Hit
	require.NoError(t, json.Unmarshal([]byte(`{"score": 1.5}`), &h))

	assert.Empty(t, h.Path)
	assert.Empty(t, h.Name)
	assert.Equal(t, 1.5, h.Extra["score"])
}

func TestHit_RoundTripKeepsExtras(t *testing.T) {
	in := Hit{
		Path: "/a.txt",
		Name: "a.txt",
		Extra: map[string]any{
			"mime":   "text/plain",
			"custom": "kept",
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Hit
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, in.Path, out.Path)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, "kept", out.Extra["custom"])
	assert.Equal(t, "text/plain", out.Mime())
}

func TestHit_TypedAccessors(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	h := Hit{
		Path: "/a.txt",
		Name: "a.txt",
		Extra: map[string]any{
			"size":     float64(4096), // as decoded from JSON
			"modified": now.Format(time.RFC3339),
			"mime":     "text/plain",
			"snippet":  "hello",
		},
	}

	size, ok := h.Size()
	assert.True(t, ok)
	assert.Equal(t, int64(4096), size)

	mod, ok := h.Modified()
	assert.True(t, ok)
	assert.True(t, mod.Equal(now))

	assert.Equal(t, "text/plain", h.Mime())
	assert.Equal(t, "hello", h.Snippet())
}

func TestHit_AccessorsAbsent(t *testing.T) {
	h := Hit{Path: "/a.txt", Name: "a.txt"}

	_, ok := h.Size()
	assert.False(t, ok)
	_, ok = h.Modified()
	assert.False(t, ok)
	assert.Empty(t, h.Mime())
	assert.Empty(t, h.Snippet())
}
