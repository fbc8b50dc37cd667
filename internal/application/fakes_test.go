package application_test

import (
	"context"
	"errors"
	"sync"

	"github.com/abdidvp/polaxis/internal/domain"
)

const (
	yamlBank   = "../../testdata/banks/questions.yaml"
	tomlBank   = "../../testdata/banks/questions.toml"
	aliceFile  = "../../testdata/answers/alice.yaml"
	bobFile    = "../../testdata/answers/bob.json"
	carolFile  = "../../testdata/answers/carol.toml"
	fixedStamp = "2026-03-01T12:00:00Z"
)

type fakeVersioner struct {
	hash string
	err  error
}

func (v fakeVersioner) CommitHash(string) (string, error) { return v.hash, v.err }

type memCache struct {
	mu      sync.Mutex
	entries map[string]*domain.Classification
	getErr  error
	puts    int
}

func newMemCache() *memCache { return &memCache{entries: map[string]*domain.Classification{}} }

func (c *memCache) Get(_ context.Context, key string) (*domain.Classification, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memCache) Clear(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]*domain.Classification{}
	return nil
}

func (c *memCache) Put(_ context.Context, key string, v *domain.Classification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
	c.puts++
	return nil
}

type memStore struct {
	mu      sync.Mutex
	records map[string]*domain.ResultRecord
	codes   []string
	saveErr error
}

func newMemStore() *memStore { return &memStore{records: map[string]*domain.ResultRecord{}} }

func (s *memStore) Save(_ context.Context, rec *domain.ResultRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[rec.ID] = rec
	s.codes = append(s.codes, rec.Code)
	return nil
}

func (s *memStore) Get(_ context.Context, id string) (*domain.ResultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrResultNotFound
	}
	return rec, nil
}

func (s *memStore) ListCodes(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.codes...), nil
}

func (s *memStore) Close() error { return nil }

type memHistory struct {
	mu      sync.Mutex
	entries []domain.ResultEntry
}

func (h *memHistory) Save(_ string, e domain.ResultEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	return nil
}

func (h *memHistory) Load(string) ([]domain.ResultEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries, nil
}

var errBoom = errors.New("boom")
