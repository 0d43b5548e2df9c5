// Package ssh adapts gliderlabs SSH sessions into tcell screens so each
// connection can host its own game.
package ssh

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no PTY")

// DefaultTerm is used when the client sends no TERM or one that is not allowed.
const DefaultTerm = "xterm-256color"

// AllowedTerms are the TERM values a client may select. Anything else falls
// back to DefaultTerm, since TERM names a terminfo entry on the host.
var AllowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// SessionTty implements tcell.Tty over a gliderlabs SSH session.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func()
	watch  sync.Once
}

// NewSessionTty wraps s. pty holds the initial window size; winCh delivers
// later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops: the handler goroutine owns the channel.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The window channel is
// drained by a single goroutine for the life of the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				notify := t.cb
				t.mu.Unlock()
				if notify != nil {
					notify()
				}
			}
		}()
	})
}

// Term returns the session's TERM if it is allowed, DefaultTerm otherwise.
func Term(s gossh.Session) string {
	for _, env := range s.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && AllowedTerms[v] {
			return v
		}
	}
	return DefaultTerm
}

// NewScreen builds and initializes a tcell screen on the session's PTY
// using the terminfo entry for Term(s). The caller must Fini it.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	ti, err := tcell.LookupTerminfo(Term(s))
	if err != nil {
		return nil, fmt.Errorf("terminfo: %w", err)
	}
	screen, err := tcell.NewTerminfoScreenFromTtyTerminfo(NewSessionTty(s, pty, winCh), ti)
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
