package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"golang.org/x/sync/singleflight"
)

const defaultLoadTimeout = time.Minute

// ErrMiss is returned by a Remote when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Remote is a shared second-level cache behind the in-process entries.
type Remote interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store keeps encoded values in memory and, when configured, in a Remote. Remote
// failures are logged and treated as misses so the cache never fails a request.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	remote  Remote
	logger  *logging.Logger
	flight  singleflight.Group
	now     func() time.Time

	loadTimeout time.Duration
}

type Option func(*Store)

func WithRemote(remote Remote) Option {
	return func(s *Store) {
		s.remote = remote
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLoadTimeout bounds a shared load, which no longer follows any caller's context.
func WithLoadTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		if timeout > 0 {
			s.loadTimeout = timeout
		}
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		logger:  logging.Default(),
		now:     time.Now,

		loadTimeout: defaultLoadTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		if s.ttl <= 0 || e.expiresAt.After(now) {
			return e.value, true
		}
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
	}

	if s.remote == nil {
		return nil, false
	}
	value, err := s.remote.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			s.logger.WarnContext(ctx, "remote cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	s.setLocal(key, value)
	return value, true
}

func (s *Store) Set(ctx context.Context, key string, value []byte) {
	if key == "" {
		return
	}

	s.setLocal(key, value)
	if s.remote == nil {
		return
	}
	if err := s.remote.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "remote cache write failed", "key", key, "error", err)
	}
}

func (s *Store) Delete(ctx context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()

	if s.remote == nil {
		return
	}
	if err := s.remote.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "remote cache delete failed", "key", key, "error", err)
	}
}

func (s *Store) setLocal(key string, value []byte) {
	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// Loader returns the value and whether it may be cached.
type Loader[T any] func(ctx context.Context) (value T, cacheable bool, err error)

// GetOrLoad returns the cached value for key, or runs load once per key across
// concurrent callers and caches the result when load marks it cacheable.
// A nil store or an empty key always loads.
func GetOrLoad[T any](ctx context.Context, s *Store, key string, load Loader[T]) (T, error) {
	var zero T
	if load == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if s == nil || key == "" {
		value, _, err := load(ctx)
		return value, err
	}

	if value, ok := decode[T](ctx, s, key); ok {
		return value, nil
	}

	// Followers must not inherit the leader's cancellation, so the load runs detached and
	// each caller only gives up its own wait.
	ch := s.flight.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()

		if value, ok := decode[T](loadCtx, s, key); ok {
			return value, nil
		}

		value, cacheable, err := runLoad(loadCtx, load)
		if err != nil {
			return zero, err
		}
		if cacheable {
			if raw, encodeErr := sonic.Marshal(value); encodeErr == nil {
				s.Set(loadCtx, key, raw)
			} else {
				s.logger.WarnContext(loadCtx, "cache encode failed", "key", key, "error", encodeErr)
			}
		}
		return value, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// runLoad turns a panicking loader into an error; DoChan would otherwise crash the process.
func runLoad[T any](ctx context.Context, load Loader[T]) (value T, cacheable bool, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("cache loader panicked: %v", recovered)
		}
	}()
	return load(ctx)
}

func decode[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var value T
	raw, ok := s.Get(ctx, key)
	if !ok {
		return value, false
	}
	if err := sonic.Unmarshal(raw, &value); err != nil {
		s.logger.WarnContext(ctx, "cache decode failed, dropping entry", "key", key, "error", err)
		s.Delete(ctx, key)
		return value, false
	}
	return value, true
}
