// Package nav tracks which screen is showing and how deep it sits in its
// container. Containers are either a stack (every navigation pushes) or a tab
// bar (navigating to a tab selects it; anything else is pushed on top).
package nav

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// ErrUnknownRoute is returned when navigating to a route that was never registered.
var ErrUnknownRoute = errors.New("unknown route")

// Key prefixes identify the container kind.
const (
	StackPrefix = "stack-"
	TabsPrefix  = "tab-"
)

// Route is one entry in the navigation history.
type Route struct {
	Name   string
	Params map[string]string
}

// State is the read-only view of a container.
type State struct {
	// Index is the position of the focused route.
	Index int
	// Key identifies the container; stack containers start with StackPrefix.
	Key string
}

// Navigator owns the routes of one container. It is driven from the UI loop
// only.
type Navigator struct {
	key    string
	stack  bool
	known  map[string]bool
	tabs   []string
	tab    int
	routes []Route
}

// NewStack returns a stack container with root as its only route.
func NewStack(root string, known ...string) *Navigator {
	n := &Navigator{key: StackPrefix + uuid.NewString(), stack: true, known: map[string]bool{root: true}}
	for _, k := range known {
		n.known[k] = true
	}
	n.routes = []Route{{Name: root}}
	return n
}

// NewTabs returns a tab container. The first tab is focused.
func NewTabs(tabs []string, known ...string) *Navigator {
	n := &Navigator{key: TabsPrefix + uuid.NewString(), known: map[string]bool{}, tabs: slices.Clone(tabs)}
	for _, t := range tabs {
		n.known[t] = true
	}
	for _, k := range known {
		n.known[k] = true
	}
	return n
}

// IsStack reports whether the container is a stack.
func (n *Navigator) IsStack() bool {
	return n.stack
}

// State returns the container key and focused index. For tab containers the
// index is the tab position, or the number of tabs plus pushed routes when a
// route sits above the tab bar.
func (n *Navigator) State() State {
	if n.IsStack() {
		return State{Index: len(n.routes) - 1, Key: n.key}
	}
	if len(n.routes) > 0 {
		return State{Index: len(n.tabs) + len(n.routes) - 1, Key: n.key}
	}
	return State{Index: n.tab, Key: n.key}
}

// Current returns the focused route.
func (n *Navigator) Current() Route {
	if len(n.routes) > 0 {
		return n.routes[len(n.routes)-1]
	}
	if len(n.tabs) == 0 {
		return Route{}
	}
	return Route{Name: n.tabs[n.tab]}
}

// Navigate focuses the named route. A route already in the history is
// returned to, dropping everything above it; its params are replaced when
// params is non-nil.
func (n *Navigator) Navigate(name string, params map[string]string) error {
	if !n.known[name] {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	if !n.IsStack() {
		if i := slices.Index(n.tabs, name); i >= 0 {
			n.tab = i
			n.routes = nil
			return nil
		}
	}
	if i := slices.IndexFunc(n.routes, func(r Route) bool { return r.Name == name }); i >= 0 {
		n.routes = n.routes[:i+1]
		if params != nil {
			n.routes[i].Params = params
		}
		return nil
	}
	n.routes = append(n.routes, Route{Name: name, Params: params})
	return nil
}

// Back pops the focused route. It reports false when there is nothing to pop:
// the root of a stack and the tab bar itself stay put.
func (n *Navigator) Back() bool {
	floor := 0
	if n.IsStack() {
		floor = 1
	}
	if len(n.routes) <= floor {
		return false
	}
	n.routes = n.routes[:len(n.routes)-1]
	return true
}

// Depth returns the number of routes that can be popped.
func (n *Navigator) Depth() int {
	if n.IsStack() {
		return len(n.routes) - 1
	}
	return len(n.routes)
}
