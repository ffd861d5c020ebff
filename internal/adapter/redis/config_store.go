package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/pscheid92/devbox/internal/domain"
)

// ConfigStore keeps one JSON document per application name under "<prefix>:config:<app>".
// Documents never expire and survive application deletion.
type ConfigStore struct {
	rdb    goredis.Cmdable
	prefix string
	reads  singleflight.Group
}

var _ domain.ConfigRepository = (*ConfigStore)(nil)

func NewConfigStore(rdb goredis.Cmdable, prefix string) *ConfigStore {
	return &ConfigStore{rdb: rdb, prefix: prefix}
}

// Get collapses concurrent reads of the same document into one GET. The shared read
// ignores the first caller's cancellation so joined callers are not failed by it.
func (s *ConfigStore) Get(ctx context.Context, appName string) (domain.ConfigDocument, error) {
	readCtx := context.WithoutCancel(ctx)
	v, err, _ := s.reads.Do(appName, func() (any, error) {
		data, err := s.rdb.Get(readCtx, s.key(appName)).Bytes()
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrConfigNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config for %q: %w", appName, err)
		}
		return domain.ConfigDocument(data), nil
	})
	if err != nil {
		return nil, err
	}

	// Shared results must not alias between callers.
	return v.(domain.ConfigDocument).Clone(), nil
}

func (s *ConfigStore) Set(ctx context.Context, appName string, doc domain.ConfigDocument) error {
	if err := s.rdb.Set(ctx, s.key(appName), []byte(doc), 0).Err(); err != nil {
		return fmt.Errorf("failed to write config for %q: %w", appName, err)
	}
	// A read still in flight may have seen the previous document; later Gets must not join it.
	s.reads.Forget(appName)
	return nil
}

func (s *ConfigStore) key(appName string) string {
	return s.prefix + ":config:" + appName
}
