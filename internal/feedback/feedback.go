// Package feedback provides best-effort tactile or audible cues for user
// gestures. Terminals have no haptics, so the default cue is the BEL character.
package feedback

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrUnsupported is returned by impactors that cannot produce a cue.
var ErrUnsupported = errors.New("feedback unsupported")

// Style is the strength of an impact cue.
type Style int

const (
	Light Style = iota
	Medium
	Heavy
)

func (s Style) String() string {
	switch s {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Impactor produces an impact cue.
type Impactor interface {
	Impact(ctx context.Context, style Style) error
}

// Bell rings the terminal bell. Heavier styles ring more than once. Each
// Impact is a single Write of BEL bytes, which an *os.File serializes with
// other writers such as the UI renderer; BEL moves no cursor, so a cue that
// lands between two frames leaves the screen untouched.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Impact(ctx context.Context, style Style) error {
	if b == nil || b.w == nil {
		return ErrUnsupported
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	rings := max(int(style)+1, 1)
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, strings.Repeat("\a", rings))
	return err
}

// Nop never produces a cue.
type Nop struct{}

func (Nop) Impact(context.Context, Style) error { return ErrUnsupported }
