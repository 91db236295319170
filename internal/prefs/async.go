package prefs

import "context"

// GetResult is delivered by GetAsync.
type GetResult struct {
	Value string
	OK    bool
	Err   error
}

// GetAsync reads key on a separate goroutine; the channel receives exactly one result.
func GetAsync(ctx context.Context, s Store, key string) <-chan GetResult {
	ch := make(chan GetResult, 1)
	go func() {
		v, ok, err := s.Get(ctx, key)
		ch <- GetResult{Value: v, OK: ok, Err: err}
	}()
	return ch
}

// SetAsync writes key on a separate goroutine; the channel receives exactly one error (possibly nil).
func SetAsync(ctx context.Context, s Store, key, value string) <-chan error {
	ch := make(chan error, 1)
	go func() { ch <- s.Set(ctx, key, value) }()
	return ch
}
