package domain

import (
	"encoding/json"
	"time"
)

// Hit is a single result record from the index.
//
// The index schema is open-ended: different backends attach different
// extraction metadata. Only path and name are required; every other
// field is kept in Extra so unknown keys survive a round trip and can
// never fail decoding.
type Hit struct {
	// Path is the location of the matched file.
	Path string

	// Name is the display name of the matched file.
	Name string

	// Extra holds all remaining fields as reported by the index.
	Extra map[string]any
}

// Well-known extra keys written by the local backend. Other backends
// may report more; the core ignores what it does not recognise.
const (
	hitKeySize     = "size"
	hitKeyModified = "modified"
	hitKeyMime     = "mime"
	hitKeySnippet  = "snippet"
)

// UnmarshalJSON decodes a hit from an open-ended index record.
// Missing path/name decode to empty strings rather than failing.
func (h *Hit) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	h.Extra = make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "path":
			if s, ok := v.(string); ok {
				h.Path = s
				continue
			}
		case "name":
			if s, ok := v.(string); ok {
				h.Name = s
				continue
			}
		}
		h.Extra[k] = v
	}
	return nil
}

// MarshalJSON encodes the hit back into a flat record, extras included.
func (h Hit) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(h.Extra)+2)
	for k, v := range h.Extra {
		raw[k] = v
	}
	raw["path"] = h.Path
	raw["name"] = h.Name
	return json.Marshal(raw)
}

// Size returns the file size extra, or false when absent or untyped.
func (h Hit) Size() (int64, bool) {
	switch v := h.Extra[hitKeySize].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// Modified returns the modification time extra when present and
// parseable as RFC 3339.
func (h Hit) Modified() (time.Time, bool) {
	switch v := h.Extra[hitKeyModified].(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Mime returns the mime type extra, or empty when absent.
func (h Hit) Mime() string {
	s, _ := h.Extra[hitKeyMime].(string)
	return s
}

// Snippet returns the extracted text snippet, or empty when absent.
func (h Hit) Snippet() string {
	s, _ := h.Extra[hitKeySnippet].(string)
	return s
}
