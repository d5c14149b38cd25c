package cache

import (
	"context"
	"strings"
	"sync"

	"github.com/viccon/sturdyc"
)

// MemoryStore keeps payloads in a sharded sturdyc client.
//
// Writes share one lock so that DeletePrefix sees a stable key set between
// the scan and the deletes.
type MemoryStore struct {
	client *sturdyc.Client[[]byte]
	mu     sync.Mutex
}

func NewMemoryStore(capacity, numShards, evictionPercentage int) *MemoryStore {
	return &MemoryStore{
		client: sturdyc.New[[]byte](capacity, numShards, noExpiry, evictionPercentage),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	payload, ok := s.client.Get(key)
	return payload, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.client.Set(key, payload)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}

func (s *MemoryStore) DeletePrefix(ctx context.Context, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}
	return nil
}

// Keys lists every stored key.
func (s *MemoryStore) Keys() []string {
	return s.client.ScanKeys()
}

func (s *MemoryStore) Close() error {
	return nil
}
