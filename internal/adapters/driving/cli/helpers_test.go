package cli

import (
	"context"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/ingest"
)

type stubIndex struct {
	hits    []domain.Hit
	total   int
	err     error
	queries []driven.IndexQuery
	added   []driven.IndexDocument
	removed []string
}

func (s *stubIndex) Search(ctx context.Context, q driven.IndexQuery) (driven.IndexPage, error) {
	s.queries = append(s.queries, q)
	if s.err != nil {
		return driven.IndexPage{}, s.err
	}
	return driven.IndexPage{Hits: s.hits, TotalHits: s.total}, nil
}

func (s *stubIndex) Add(ctx context.Context, doc driven.IndexDocument) error {
	s.added = append(s.added, doc)
	return nil
}

func (s *stubIndex) Remove(ctx context.Context, path string) error {
	s.removed = append(s.removed, path)
	return nil
}

func (s *stubIndex) Close() error { return nil }

type stubFileAccess struct {
	opened  []string
	deleted []string
}

func (s *stubFileAccess) OpenFile(ctx context.Context, path string) error {
	s.opened = append(s.opened, path)
	return nil
}

func (s *stubFileAccess) OpenFolder(ctx context.Context, path string) error {
	s.opened = append(s.opened, path)
	return nil
}

func (s *stubFileAccess) DeleteFile(ctx context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

type memConfig struct {
	data map[string]any
}

func newMemConfig() *memConfig {
	return &memConfig{data: map[string]any{}}
}

func (m *memConfig) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memConfig) GetString(key string) string {
	s, _ := m.data[key].(string)
	return s
}

func (m *memConfig) GetInt(key string) int {
	i, _ := m.data[key].(int)
	return i
}

func (m *memConfig) GetBool(key string) bool {
	b, _ := m.data[key].(bool)
	return b
}

func (m *memConfig) GetStringSlice(key string) []string {
	s, _ := m.data[key].([]string)
	return s
}

func (m *memConfig) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *memConfig) Save() error { return nil }

// setupTestServices installs stub services and returns them alongside
// a cleanup restoring the previous state.
func setupTestServices(idx *stubIndex) (*stubFileAccess, *memConfig, func()) {
	files := &stubFileAccess{}
	config := newMemConfig()

	prev := Services{
		Index:    indexPort,
		Files:    fileAccess,
		Config:   configStore,
		Settings: settings,
		Scanner:  scanner,
	}

	SetServices(&Services{
		Index:    idx,
		Files:    files,
		Config:   config,
		Settings: domain.DefaultSettings(),
		Scanner:  ingest.NewScanner(idx),
	})

	return files, config, func() {
		SetServices(&prev)
	}
}
