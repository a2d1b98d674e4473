package kvstore

import (
	"context"
	"encoding/json"
)

// Store is the namespaced key-value interface everything above is built on.
// Get returns (nil, nil) when the key does not exist. GetByPrefix is the
// only bulk-read primitive; it returns the raw values of every key that
// starts with the given prefix.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

// GetJSON loads a key and unmarshals it into dest. The bool reports whether
// the key existed.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}

// ListJSON scans a prefix and unmarshals every value into T. Values that
// fail to unmarshal are skipped rather than failing the whole listing.
func ListJSON[T any](ctx context.Context, s Store, prefix string) ([]T, error) {
	raws, err := s.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
