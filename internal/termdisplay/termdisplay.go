// Package termdisplay is the headless fallback for internal/display: it
// renders the same two-line, 16-column grid to a raw terminal and reads
// the four buttons off the keyboard, for environments with no GUI
// surface for ebiten to open a window on (CI, containers, SSH).
package termdisplay

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/avrkern/taskkernel/internal/uibutton"
)

const cols = 16

var keyButtons = map[byte]uibutton.Button{
	'\r': uibutton.Select,
	'\n': uibutton.Select,
	'w':  uibutton.Up,
	's':  uibutton.Down,
	'b':  uibutton.Back,
	0x1b: uibutton.Back,
}

// Terminal implements kernel.Display and kernel.ButtonInput against a
// raw stdin/stdout, the same non-blocking-read idiom the retrieval
// pack's terminal_host.go uses for its MMIO-backed serial console.
type Terminal struct {
	fd           int
	oldState     *term.State
	nonblockSet  bool
	startOnce    sync.Once
	stopCh       chan struct{}
	stopped      sync.Once

	mu    sync.Mutex
	lines [2]string

	pressCh chan uibutton.Button
	navCh   chan uibutton.Button
}

// New constructs a Terminal. Call Start before using it as a
// kernel.Display/kernel.ButtonInput; call Stop to restore the terminal.
func New() *Terminal {
	return &Terminal{
		stopCh:  make(chan struct{}),
		pressCh: make(chan uibutton.Button, 4),
		navCh:   make(chan uibutton.Button, 4),
	}
}

// Start puts stdin into raw, non-blocking mode and begins reading
// keystrokes in a background goroutine.
func (t *Terminal) Start() error {
	var startErr error
	t.startOnce.Do(func() {
		t.fd = int(os.Stdin.Fd())
		old, err := term.MakeRaw(t.fd)
		if err != nil {
			startErr = fmt.Errorf("termdisplay: failed to set raw mode: %w", err)
			return
		}
		t.oldState = old

		if err := syscall.SetNonblock(t.fd, true); err != nil {
			_ = term.Restore(t.fd, t.oldState)
			startErr = fmt.Errorf("termdisplay: failed to set nonblocking stdin: %w", err)
			return
		}
		t.nonblockSet = true

		go t.readLoop()
	})
	return startErr
}

func (t *Terminal) readLoop() {
	buf := make([]byte, 1)
	for {
		select {
		case <-t.stopCh:
			return
		default:
		}
		n, err := syscall.Read(t.fd, buf)
		if n > 0 {
			if btn, ok := keyButtons[buf[0]]; ok {
				select {
				case t.pressCh <- btn:
				default:
				}
				select {
				case t.navCh <- btn:
				default:
				}
			}
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// Stop restores the terminal to its original mode.
func (t *Terminal) Stop() {
	t.stopped.Do(func() { close(t.stopCh) })
	if t.nonblockSet {
		_ = syscall.SetNonblock(t.fd, false)
		t.nonblockSet = false
	}
	if t.oldState != nil {
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
}

// DisplayErrorLine implements kernel.Display.
func (t *Terminal) DisplayErrorLine(msg string) {
	t.SetLines(msg, "")
}

// SetLines sets both rendered lines and repaints the terminal.
func (t *Terminal) SetLines(top, bottom string) {
	t.mu.Lock()
	t.lines[0] = pad(top)
	t.lines[1] = pad(bottom)
	t.mu.Unlock()

	fmt.Printf("\r\n+%s+\r\n|%s|\r\n|%s|\r\n+%s+\r\n", dashes(), t.lines[0], t.lines[1], dashes())
}

func pad(s string) string {
	if len(s) > cols {
		return s[:cols]
	}
	for len(s) < cols {
		s += " "
	}
	return s
}

func dashes() string {
	b := make([]byte, cols)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}

// WaitForPress implements kernel.ButtonInput.
func (t *Terminal) WaitForPress() {
	select {
	case <-t.pressCh:
	case <-t.stopCh:
	}
}

// WaitForRelease implements kernel.ButtonInput; see internal/display's
// Panel.WaitForRelease for why this does not block on a distinct
// release event.
func (t *Terminal) WaitForRelease() {
	select {
	case <-t.pressCh:
	default:
	}
}

// Nav returns the channel the task-manager UI reads identified button
// presses from; see internal/display's Panel.Nav for why this is kept
// separate from pressCh/WaitForPress.
func (t *Terminal) Nav() <-chan uibutton.Button {
	return t.navCh
}
