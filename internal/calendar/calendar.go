// Package calendar turns instants into display strings using moment-style
// patterns such as "MMMM D" or "YYYY-MM-DD".
package calendar

import (
	"strings"
	"time"
)

// Formatter converts an instant and a pattern into display text.
type Formatter interface {
	Format(t time.Time, pattern string) string
}

// token maps a pattern token to the Go reference layout that renders it.
type token struct {
	pattern string
	layout  string
}

// Longer tokens come first so "MMMM" wins over "MM".
var tokens = []token{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"DD", "02"},
	{"D", "2"},
}

// Moment is the default Formatter. Month and weekday names are English.
type Moment struct {
	// Location, when set, converts the instant before formatting.
	Location *time.Location
}

// Format renders t according to pattern. Characters that are not part of a
// known token are copied through unchanged.
func (m Moment) Format(t time.Time, pattern string) string {
	if m.Location != nil {
		t = t.In(m.Location)
	}
	var b strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(pattern[i:], tok.pattern) {
				b.WriteString(t.Format(tok.layout))
				i += len(tok.pattern)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}
