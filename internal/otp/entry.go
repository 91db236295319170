// Package otp models the one-time-code screen: six digit slots with focus handling
// and a resend cooldown.
package otp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/and161185/kid-clinic/internal/errs"
)

// Length is the number of digits in a code.
const Length = 6

// State is the fill state of an Entry.
type State int

// Fill states.
const (
	Empty State = iota
	Partial
	Complete
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Entry holds the code slots and the focused slot. Safe for concurrent use.
type Entry struct {
	mu    sync.Mutex
	slots [Length]string
	focus int
}

// NewEntry returns an empty entry focused on the first slot.
func NewEntry() *Entry { return &Entry{} }

// EnterDigit sets slot i to a single decimal digit and advances focus.
// A Length-character input is treated as a paste. Anything else is rejected.
func (e *Entry) EnterDigit(i int, s string) bool {
	if len(s) == Length {
		return e.Paste(s)
	}
	if i < 0 || i >= Length || !isDigits(s) || len(s) != 1 {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.slots[i] = s
	if i+1 < Length {
		e.focus = i + 1
	} else {
		e.focus = i
	}
	return true
}

// Paste fills every slot at once. Only a Length-digit string is accepted.
func (e *Entry) Paste(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != Length || !isDigits(s) {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.slots {
		e.slots[i] = s[i : i+1]
	}
	e.focus = Length - 1
	return true
}

// Backspace clears slot i, or the previous slot when i is already empty.
func (e *Entry) Backspace(i int) {
	if i < 0 || i >= Length {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.slots[i] == "" && i > 0 {
		e.slots[i-1] = ""
		e.focus = i - 1
		return
	}
	e.slots[i] = ""
	e.focus = i
}

// State reports how many slots are filled.
func (e *Entry) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state()
}

func (e *Entry) state() State {
	n := 0
	for _, s := range e.slots {
		if s != "" {
			n++
		}
	}
	switch n {
	case 0:
		return Empty
	case Length:
		return Complete
	default:
		return Partial
	}
}

// Digits returns a copy of the slots; empty slots are "".
func (e *Entry) Digits() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, Length)
	copy(out, e.slots[:])
	return out
}

// Focus returns the index of the focused slot.
func (e *Entry) Focus() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focus
}

// Code returns the joined digits once every slot is filled.
func (e *Entry) Code() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st := e.state(); st != Complete {
		return "", fmt.Errorf("%w: %s", errs.ErrIncompleteCode, st)
	}
	return strings.Join(e.slots[:], ""), nil
}

// Reset clears every slot and focuses the first one.
func (e *Entry) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.slots = [Length]string{}
	e.focus = 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
