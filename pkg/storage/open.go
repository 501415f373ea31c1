package storage

import (
	"context"
	"fmt"
	"strings"
)

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
)

// Config selects and configures a backend.
type Config struct {
	Backend Backend `mapstructure:"backend"`
	// FilePath overrides DefaultFilePath for the file backend.
	FilePath string       `mapstructure:"file_path"`
	Redis    RedisOptions `mapstructure:"redis"`
}

// Open builds the Store described by cfg. The returned close function is
// never nil.
func Open(ctx context.Context, cfg Config) (Store, func() error, error) {
	noop := func() error { return nil }

	switch Backend(strings.ToLower(strings.TrimSpace(string(cfg.Backend)))) {
	case "", BackendMemory:
		return NewMemory(nil), noop, nil
	case BackendFile:
		path := cfg.FilePath
		if strings.TrimSpace(path) == "" {
			var err error
			if path, err = DefaultFilePath(); err != nil {
				return nil, noop, err
			}
		}
		store, err := NewFile(path)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case BackendRedis:
		store, err := NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return nil, noop, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
