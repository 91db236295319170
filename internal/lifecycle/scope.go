// Package lifecycle ties background work to the lifetime of a screen.
package lifecycle

import (
	"context"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"github.com/and161185/kid-clinic/internal/logger"
)

// Scope owns the context of one screen. Work started with Go is canceled on Close,
// and results handed to Deliver after Close are dropped.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New opens a scope derived from parent.
func New(parent context.Context, log *zap.Logger) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel, log: logger.OrNop(log)}
}

// Context is canceled when the scope closes.
func (s *Scope) Context() context.Context { return s.ctx }

// Go runs fn in a goroutine owned by the scope. A panic in fn is logged and swallowed.
// It reports false, and does not run fn, once the scope is closed.
func (s *Scope) Go(fn func(ctx context.Context)) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
				)
			}
		}()
		fn(s.ctx)
	}()
	return true
}

// Deliver applies fn if the scope is still open and reports whether it ran.
// Deliveries are serialized; fn must not call Close.
func (s *Scope) Deliver(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	fn()
	return true
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close cancels the scope and waits for its goroutines. Later calls are no-ops.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
