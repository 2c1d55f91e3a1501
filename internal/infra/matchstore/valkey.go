package matchstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/reawakn/matchengine/internal/domain/matching"
)

// ValkeyStore caches pair scores in a Valkey-compatible database so
// multiple instances share warm scores.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs the store.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "match"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (matching.MatchResult, bool, error) {
	cmd := s.client.B().Get().Key(s.cacheKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return matching.MatchResult{}, false, nil
		}
		return matching.MatchResult{}, false, err
	}
	var result matching.MatchResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return matching.MatchResult{}, false, err
	}
	return result, true, nil
}

func (s *ValkeyStore) Set(ctx context.Context, key string, result matching.MatchResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if ttl > 0 {
		cmd := s.client.B().Set().Key(s.cacheKey(key)).Value(string(payload)).Ex(ttl).Build()
		return s.client.Do(ctx, cmd).Error()
	}
	cmd := s.client.B().Set().Key(s.cacheKey(key)).Value(string(payload)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) Invalidate(ctx context.Context, key string) error {
	cmd := s.client.B().Del().Key(s.cacheKey(key)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) cacheKey(key string) string {
	return s.prefix + ":score:" + key
}

var _ matching.ScoreCache = (*ValkeyStore)(nil)
