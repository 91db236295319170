package otp

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/session"
)

func TestEntry_SequentialDigits(t *testing.T) {
	e := NewEntry()
	require.Equal(t, Empty, e.State())

	for i, d := range []string{"1", "2", "3", "4", "5", "6"} {
		require.True(t, e.EnterDigit(i, d))
		if i < Length-1 {
			require.Equal(t, Partial, e.State())
			require.Equal(t, i+1, e.Focus())
		}
	}
	require.Equal(t, Complete, e.State())
	require.Equal(t, Length-1, e.Focus())
	require.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, e.Digits())

	code, err := e.Code()
	require.NoError(t, err)
	require.Equal(t, "123456", code)
}

func TestEntry_RejectsNonDigits(t *testing.T) {
	e := NewEntry()
	for _, in := range []string{"", "a", "12", " ", "٣", "-1"} {
		require.False(t, e.EnterDigit(0, in), "input %q", in)
	}
	require.False(t, e.EnterDigit(-1, "1"))
	require.False(t, e.EnterDigit(Length, "1"))
	require.Equal(t, Empty, e.State())
	require.Equal(t, 0, e.Focus())
}

func TestEntry_PasteEqualsTyping(t *testing.T) {
	typed := NewEntry()
	for i, d := range []string{"9", "8", "7", "6", "5", "4"} {
		require.True(t, typed.EnterDigit(i, d))
	}

	pasted := NewEntry()
	require.True(t, pasted.Paste("987654"))
	require.Equal(t, typed.Digits(), pasted.Digits())
	require.Equal(t, typed.State(), pasted.State())

	// a six character value typed into any slot behaves as a paste
	viaSlot := NewEntry()
	require.True(t, viaSlot.EnterDigit(3, "987654"))
	require.Equal(t, typed.Digits(), viaSlot.Digits())
}

func TestEntry_PasteReplacesAndValidates(t *testing.T) {
	e := NewEntry()
	require.True(t, e.EnterDigit(0, "1"))

	require.False(t, e.Paste("12345"))
	require.False(t, e.Paste("1234567"))
	require.False(t, e.Paste("12a456"))
	require.Equal(t, []string{"1", "", "", "", "", ""}, e.Digits())

	require.True(t, e.Paste("000111"))
	require.Equal(t, []string{"0", "0", "0", "1", "1", "1"}, e.Digits())
}

func TestEntry_Backspace(t *testing.T) {
	e := NewEntry()
	require.True(t, e.EnterDigit(0, "1"))
	require.True(t, e.EnterDigit(1, "2"))
	require.True(t, e.EnterDigit(2, "3"))

	// slot 3 empty: merge back into slot 2
	e.Backspace(3)
	require.Equal(t, []string{"1", "2", "", "", "", ""}, e.Digits())
	require.Equal(t, 2, e.Focus())

	// slot 1 filled: cleared in place
	e.Backspace(1)
	require.Equal(t, []string{"1", "", "", "", "", ""}, e.Digits())
	require.Equal(t, 1, e.Focus())

	e.Backspace(0)
	e.Backspace(0)
	require.Equal(t, Empty, e.State())
	require.Equal(t, 0, e.Focus())

	e.Backspace(99)
	require.Equal(t, Empty, e.State())
}

func TestEntry_CodeIncomplete(t *testing.T) {
	e := NewEntry()
	require.True(t, e.EnterDigit(0, "4"))
	_, err := e.Code()
	require.ErrorIs(t, err, errs.ErrIncompleteCode)

	require.True(t, e.Paste("111111"))
	e.Reset()
	require.Equal(t, Empty, e.State())
	require.Equal(t, "empty", e.State().String())
}

func TestCooldown_FiresExactlyOnce(t *testing.T) {
	var fired int
	c := NewCooldown(0, func() { fired++ })
	require.Equal(t, CooldownSeconds, c.Remaining())
	require.False(t, c.Ready())

	transitions := 0
	for i := 0; i < CooldownSeconds; i++ {
		if c.Tick() {
			transitions++
		}
		if i < CooldownSeconds-1 {
			require.False(t, c.Ready())
		}
	}
	require.Equal(t, 1, transitions)
	require.Equal(t, 1, fired)
	require.True(t, c.Ready())

	for i := 0; i < 5; i++ {
		require.False(t, c.Tick())
	}
	require.Equal(t, 1, fired)
	require.Equal(t, 0, c.Remaining())

	c.Restart()
	require.Equal(t, CooldownSeconds, c.Remaining())
	require.False(t, c.Ready())
}

func TestCooldown_StopDisablesTicks(t *testing.T) {
	var fired int
	c := NewCooldown(2, func() { fired++ })
	c.Tick()
	c.Stop()
	c.Stop()
	require.False(t, c.Tick())
	require.Equal(t, 1, c.Remaining())
	require.Zero(t, fired)
}

func TestCooldown_Run(t *testing.T) {
	ready := make(chan struct{})
	c := NewCooldown(3, func() { close(ready) })

	done := make(chan struct{})
	go func() {
		c.Run(context.Background(), time.Millisecond)
		close(done)
	}()

	select {
	case <-ready:
	case <-time.After(2 * time.Second):
		t.Fatal("cooldown did not become ready")
	}
	require.True(t, c.Ready())

	c.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestCooldown_RunStopsOnContext(t *testing.T) {
	c := NewCooldown(1000, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type calls struct {
	verify atomic.Int32
	resend atomic.Int32
}

func newTestFlow(c *calls, resendKind session.Kind, opts ...FlowOption) *Flow {
	return NewFlow(
		func(_ context.Context, code string) session.Outcome {
			c.verify.Add(1)
			if code == "123456" {
				return session.Outcome{Kind: session.Success}
			}
			return session.Outcome{Kind: session.ValidationFailed}
		},
		func(context.Context) session.Outcome {
			c.resend.Add(1)
			return session.Outcome{Kind: resendKind}
		},
		opts...,
	)
}

func drain(c *Cooldown) {
	for !c.Ready() {
		c.Tick()
	}
}

func TestFlow_SubmitIncompleteIsLocal(t *testing.T) {
	var c calls
	f := newTestFlow(&c, session.Success)

	require.True(t, f.Entry.EnterDigit(0, "1"))
	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, errs.ErrIncompleteCode)
	require.Zero(t, c.verify.Load())

	require.True(t, f.Entry.Paste("123456"))
	o, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, o.OK())
	require.Equal(t, int32(1), c.verify.Load())
}

func TestFlow_ResendRequiresReady(t *testing.T) {
	var c calls
	f := newTestFlow(&c, session.Success)

	_, err := f.Resend(context.Background())
	require.ErrorIs(t, err, errs.ErrCooldownActive)
	require.Zero(t, c.resend.Load())

	drain(f.Cooldown)
	require.True(t, f.Entry.Paste("999999"))
	o, err := f.Resend(context.Background())
	require.NoError(t, err)
	require.True(t, o.OK())
	require.Equal(t, int32(1), c.resend.Load())
	require.Equal(t, CooldownSeconds, f.Cooldown.Remaining())
	require.Equal(t, Empty, f.Entry.State())

	_, err = f.Resend(context.Background())
	require.ErrorIs(t, err, errs.ErrCooldownActive)
}

func TestFlow_FailedResendRestartsByDefault(t *testing.T) {
	var c calls
	f := newTestFlow(&c, session.NetworkError)
	drain(f.Cooldown)

	o, err := f.Resend(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.NetworkError, o.Kind)
	require.False(t, f.Cooldown.Ready())
}

func TestFlow_FailedResendKeepsReadyWhenConfigured(t *testing.T) {
	var c calls
	f := newTestFlow(&c, session.NetworkError, WithRestartOnFailure(false))
	drain(f.Cooldown)

	_, err := f.Resend(context.Background())
	require.NoError(t, err)
	require.True(t, f.Cooldown.Ready())

	f.resend = func(context.Context) session.Outcome { return session.Outcome{Kind: session.Success} }
	_, err = f.Resend(context.Background())
	require.NoError(t, err)
	require.False(t, f.Cooldown.Ready())
}

func TestFlow_ConcurrentResendCallsOnce(t *testing.T) {
	var c calls
	release := make(chan struct{})
	f := NewFlow(nil, func(context.Context) session.Outcome {
		c.resend.Add(1)
		<-release
		return session.Outcome{Kind: session.Success}
	}, WithCooldown(NewCooldown(1, nil)))
	f.Cooldown.Tick()

	var wg sync.WaitGroup
	var rejected atomic.Int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.Resend(context.Background()); err != nil {
				rejected.Add(1)
			}
		}()
	}
	require.Eventually(t, func() bool { return rejected.Load() == 7 }, 2*time.Second, time.Millisecond)
	close(release)
	wg.Wait()
	require.Equal(t, int32(1), c.resend.Load())
}

func TestFlow_ResendWithoutFuncLeavesFlowUsable(t *testing.T) {
	var c calls
	f := NewFlow(newTestFlow(&c, session.Success).verify, nil)
	drain(f.Cooldown)
	require.True(t, f.Entry.Paste("123456"))

	_, err := f.Resend(context.Background())
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.True(t, f.Cooldown.Ready(), "a rejected resend must not start a countdown")
	require.Equal(t, Complete, f.Entry.State())

	o, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, o.OK())
}
