package prefs

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/logger"
)

type overlayEntry struct {
	value   string
	deleted bool
}

// Resilient wraps a durable Store so storage failures never reach the screen.
// A failed write is kept in memory for the rest of the session and logged;
// a failed read is logged and reported as absent.
type Resilient struct {
	durable Store
	log     *zap.Logger

	mu       sync.RWMutex
	overlay  map[string]overlayEntry
	degraded bool
}

var _ Store = (*Resilient)(nil)

// NewResilient wraps durable.
func NewResilient(durable Store, log *zap.Logger) *Resilient {
	return &Resilient{durable: durable, log: logger.OrNop(log), overlay: map[string]overlayEntry{}}
}

// Degraded reports whether any write has fallen back to memory.
func (s *Resilient) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Get implements Store.
func (s *Resilient) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	e, ok := s.overlay[key]
	s.mu.RUnlock()
	if ok {
		if e.deleted {
			return "", false, nil
		}
		return e.value, true, nil
	}

	v, ok, err := s.durable.Get(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, err
		}
		s.log.Warn("preference read failed, treating as unset", zap.String("key", key), zap.Error(err))
		return "", false, nil
	}
	return v, ok, nil
}

// Set implements Store. Only invalid input and caller cancellation are returned as errors.
func (s *Resilient) Set(ctx context.Context, key, value string) error {
	if err := CheckEntry(key, value); err != nil {
		return err
	}
	return s.write(ctx, key, overlayEntry{value: value}, func() error { return s.durable.Set(ctx, key, value) })
}

// Delete implements Store.
func (s *Resilient) Delete(ctx context.Context, key string) error {
	return s.write(ctx, key, overlayEntry{deleted: true}, func() error { return s.durable.Delete(ctx, key) })
}

func (s *Resilient) write(ctx context.Context, key string, e overlayEntry, op func() error) error {
	err := op()
	if err == nil {
		s.mu.Lock()
		delete(s.overlay, key)
		s.mu.Unlock()
		return nil
	}
	if errors.Is(err, errs.ErrInvalidInput) || ctx.Err() != nil {
		return err
	}

	s.log.Warn("preference write failed, keeping value in memory for this session",
		zap.String("key", key), zap.Error(err))
	s.mu.Lock()
	s.overlay[key] = e
	s.degraded = true
	s.mu.Unlock()
	return nil
}
