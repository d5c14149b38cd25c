package cache

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is the key-value contract the services rely on.
type Store interface {
	// Get returns the payload stored under key. found is false when the key
	// is missing or has been evicted.
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)

	// Set stores payload under key, replacing any previous value. Entries do
	// not expire.
	Set(ctx context.Context, key string, payload []byte) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	Close() error
}

// GetJSON reads key and decodes it into a T.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var value T

	payload, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return value, false, err
	}

	if err := json.Unmarshal(payload, &value); err != nil {
		return value, false, &DecodeError{Key: key, Err: err}
	}
	return value, true, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, payload)
}

// DecodeError reports a cached payload that no longer matches its type.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return "decode cached " + e.Key + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
