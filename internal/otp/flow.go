package otp

import (
	"context"
	"fmt"
	"sync"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/session"
)

// VerifyFunc submits a complete code.
type VerifyFunc func(ctx context.Context, code string) session.Outcome

// ResendFunc asks the server to issue a new code.
type ResendFunc func(ctx context.Context) session.Outcome

// Flow ties an Entry and a Cooldown to the verify and resend calls.
type Flow struct {
	Entry    *Entry
	Cooldown *Cooldown

	verify           VerifyFunc
	resend           ResendFunc
	restartOnFailure bool

	mu        sync.Mutex
	resending bool
}

// FlowOption configures a Flow.
type FlowOption func(*Flow)

// WithRestartOnFailure controls whether a failed resend restarts the cooldown (default true).
// When false the resend button is available again right after a failure.
func WithRestartOnFailure(v bool) FlowOption { return func(f *Flow) { f.restartOnFailure = v } }

// WithCooldown replaces the default cooldown.
func WithCooldown(c *Cooldown) FlowOption { return func(f *Flow) { f.Cooldown = c } }

// NewFlow constructs a flow with an empty entry and a fresh CooldownSeconds cooldown.
func NewFlow(verify VerifyFunc, resend ResendFunc, opts ...FlowOption) *Flow {
	f := &Flow{
		Entry:            NewEntry(),
		Cooldown:         NewCooldown(CooldownSeconds, nil),
		verify:           verify,
		resend:           resend,
		restartOnFailure: true,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Submit verifies the code. An incomplete code fails with errs.ErrIncompleteCode
// without calling verify.
func (f *Flow) Submit(ctx context.Context) (session.Outcome, error) {
	code, err := f.Entry.Code()
	if err != nil {
		return session.Outcome{}, err
	}
	return f.verify(ctx, code), nil
}

// Resend requests a new code. It fails with errs.ErrCooldownActive while cooling down
// or while another resend is in flight, and with errs.ErrInvalidInput when the flow
// has no resend func. On return the entry is cleared, unlike the mobile screen,
// which kept the typed digits after a resend.
func (f *Flow) Resend(ctx context.Context) (session.Outcome, error) {
	if f.resend == nil {
		return session.Outcome{}, fmt.Errorf("otp: resend not configured: %w", errs.ErrInvalidInput)
	}
	f.mu.Lock()
	if f.resending {
		f.mu.Unlock()
		return session.Outcome{}, errs.ErrCooldownActive
	}
	if f.restartOnFailure {
		if !f.Cooldown.claim() {
			f.mu.Unlock()
			return session.Outcome{}, errs.ErrCooldownActive
		}
	} else if !f.Cooldown.Ready() {
		f.mu.Unlock()
		return session.Outcome{}, errs.ErrCooldownActive
	}
	f.resending = true
	f.mu.Unlock()

	o := f.resend(ctx)

	if !f.restartOnFailure && o.OK() {
		f.Cooldown.Restart()
	}
	f.Entry.Reset()

	f.mu.Lock()
	f.resending = false
	f.mu.Unlock()
	return o, nil
}
