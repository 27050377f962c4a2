// Package router keeps the TUI's screen stack: home at the bottom, then
// whatever the user drilled into (quiz, result, type detail).
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keizoku/internal/screen"
)

// Op is a stack operation.
type Op int

const (
	OpPush    Op = iota // put Screen on top
	OpBack              // drop the top screen
	OpReplace           // swap the top screen for Screen
	OpHome              // drop everything above the root
)

// NavMsg asks the router to change the stack. Screens emit it through
// Push, Back, Replace and Home rather than building it directly.
type NavMsg struct {
	Op     Op
	Screen screen.Screen
}

func navigate(op Op, s screen.Screen) tea.Cmd {
	return func() tea.Msg { return NavMsg{Op: op, Screen: s} }
}

// Push opens s on top of the current screen.
func Push(s screen.Screen) tea.Cmd { return navigate(OpPush, s) }

// Back returns to the previous screen.
func Back() tea.Cmd { return navigate(OpBack, nil) }

// Replace swaps the current screen for s, so Back skips it. The quiz
// replaces itself with its result this way.
func Replace(s screen.Screen) tea.Cmd { return navigate(OpReplace, s) }

// Home returns to the root screen.
func Home() tea.Cmd { return navigate(OpHome, nil) }

// Router owns the stack. The root screen is never removed.
type Router struct {
	stack []screen.Screen
}

// New creates a Router whose root is root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// apply performs msg and returns the Init command of any screen it
// brought in.
func (r *Router) apply(msg NavMsg) tea.Cmd {
	switch msg.Op {
	case OpPush:
		r.stack = append(r.stack, msg.Screen)
	case OpReplace:
		r.stack[len(r.stack)-1] = msg.Screen
	case OpBack:
		if len(r.stack) > 1 {
			r.stack = r.stack[:len(r.stack)-1]
		}
		return nil
	case OpHome:
		r.stack = r.stack[:1]
		return nil
	}
	return msg.Screen.Init()
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if nav, ok := msg.(NavMsg); ok {
		return r.apply(nav)
	}
	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
