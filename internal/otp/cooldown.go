package otp

import (
	"context"
	"sync"
	"time"
)

// CooldownSeconds is the wait between resends.
const CooldownSeconds = 30

// Cooldown counts down whole seconds until a resend is allowed again.
// It starts cooling down; onReady fires once per countdown when it reaches zero.
type Cooldown struct {
	mu        sync.Mutex
	total     int
	remaining int
	onReady   func()
	stopped   bool

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewCooldown returns a cooldown of seconds (CooldownSeconds when not positive).
// onReady may be nil.
func NewCooldown(seconds int, onReady func()) *Cooldown {
	if seconds <= 0 {
		seconds = CooldownSeconds
	}
	return &Cooldown{total: seconds, remaining: seconds, onReady: onReady, stopCh: make(chan struct{})}
}

// Tick advances the countdown by one second. It reports whether this tick made the
// cooldown ready. Ticks while ready or after Stop do nothing.
func (c *Cooldown) Tick() bool {
	c.mu.Lock()
	if c.stopped || c.remaining == 0 {
		c.mu.Unlock()
		return false
	}
	c.remaining--
	fired := c.remaining == 0
	cb := c.onReady
	c.mu.Unlock()

	if fired && cb != nil {
		cb()
	}
	return fired
}

// Ready reports whether a resend is allowed.
func (c *Cooldown) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining == 0
}

// Remaining returns the seconds left.
func (c *Cooldown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Restart begins a new full countdown.
func (c *Cooldown) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.total
}

// claim restarts the countdown if it is ready and reports whether it was.
func (c *Cooldown) claim() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining != 0 || c.stopped {
		return false
	}
	c.remaining = c.total
	return true
}

// Run ticks every interval (one second when not positive) until ctx is done or Stop is called.
func (c *Cooldown) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		case <-t.C:
			c.Tick()
		}
	}
}

// Stop ends Run and disables further ticks. Safe to call more than once.
func (c *Cooldown) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		c.mu.Unlock()
		close(c.stopCh)
	})
}
