package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestScope_LateDeliveryDropped(t *testing.T) {
	s := New(context.Background(), nil)

	started := make(chan struct{})
	release := make(chan struct{})
	delivered := make(chan bool, 1)
	state := "loading"

	require.True(t, s.Go(func(ctx context.Context) {
		close(started)
		<-release
		delivered <- s.Deliver(func() { state = "loaded" })
	}))
	<-started

	closed := make(chan struct{})
	go func() {
		s.Close()
		close(closed)
	}()
	require.Eventually(t, s.Closed, time.Second, time.Millisecond)
	close(release)
	<-closed

	require.False(t, <-delivered)
	require.Equal(t, "loading", state)
}

func TestScope_DeliverWhileOpen(t *testing.T) {
	s := New(context.Background(), nil)
	defer s.Close()

	done := make(chan struct{})
	var got int
	s.Go(func(ctx context.Context) {
		s.Deliver(func() { got = 42 })
		close(done)
	})
	<-done
	require.Equal(t, 42, got)
}

func TestScope_CloseCancelsAndIsIdempotent(t *testing.T) {
	s := New(context.Background(), nil)

	exited := make(chan struct{})
	s.Go(func(ctx context.Context) {
		<-ctx.Done()
		close(exited)
	})

	s.Close()
	s.Close()

	select {
	case <-exited:
	default:
		t.Fatal("Close returned before the goroutine exited")
	}
	require.ErrorIs(t, s.Context().Err(), context.Canceled)
	require.False(t, s.Go(func(context.Context) { t.Error("ran after Close") }))
}

func TestScope_PanicIsRecovered(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	s := New(context.Background(), zap.New(core))

	s.Go(func(context.Context) { panic("boom") })
	s.Close()

	require.Equal(t, 1, logs.FilterMessage("panic").Len())
}

func TestScope_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	s := New(parent, nil)
	defer s.Close()

	cancel()
	<-s.Context().Done()
}
