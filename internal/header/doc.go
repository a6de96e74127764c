// Package header decides whether the navigation header is shown and what it
// shows.
//
// Each evaluation projects the navigation state, the global store snapshot and
// the theme colors onto a small Inputs value. The Builder compares it with the
// inputs of the previous evaluation and only builds a new Output when a field
// differs, so unchanged state always yields the same *Output. Hidden headers
// go through the same cache as visible ones.
//
// Actions turns control presses into range shifts and filter navigation.
package header
