// Package ssh lets a tcell screen draw over an SSH channel.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of one SSH session. Window changes
// arrive on the session's resize channel and are forwarded to tcell.
type Tty struct {
	rw     io.ReadWriteCloser
	resize <-chan gossh.Window

	mu       sync.Mutex
	size     tcell.WindowSize
	onResize func()
	watching sync.Once
}

// NewTty wraps rw. pty carries the initial window; resize delivers later
// changes and is drained for the life of the session.
func NewTty(rw io.ReadWriteCloser, pty gossh.Pty, resize <-chan gossh.Window) *Tty {
	return &Tty{
		rw:     rw,
		resize: resize,
		size:   tcell.WindowSize{Width: pty.Window.Width, Height: pty.Window.Height},
	}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *Tty) Close() error                { return t.rw.Close() }

// The channel is already in raw mode on the client side, so there is no
// local terminal state to save or restore.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize sets the callback run after each window change. The first
// call starts the watcher; it exits when the resize channel closes.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	if t.resize == nil {
		return
	}
	t.watching.Do(func() { go t.watch() })
}

func (t *Tty) watch() {
	for win := range t.resize {
		t.mu.Lock()
		t.size = tcell.WindowSize{Width: win.Width, Height: win.Height}
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
