// Package display implements the 16x2 character LCD and four-button
// input collaborators the core reaches only through the kernel.Display
// and kernel.ButtonInput interfaces, using an ebiten window as the
// physical LCD/button panel stands in for real hardware.
package display

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/avrkern/taskkernel/internal/uibutton"
)

const (
	cols = 16
	rows = 2

	cellWidth  = 18
	cellHeight = 28
	glyphScale = 3

	windowWidth  = cols*cellWidth + 2*margin
	windowHeight = rows*cellHeight + buttonBarHeight + 2*margin
	margin       = 8
	buttonBarHeight = 36
)

var buttonKeys = map[uibutton.Button]ebiten.Key{
	uibutton.Select: ebiten.KeyEnter,
	uibutton.Up:     ebiten.KeyUp,
	uibutton.Down:   ebiten.KeyDown,
	uibutton.Back:   ebiten.KeyEscape,
}

// Panel is an ebiten.Game that renders the two-line character grid and
// reads the four buttons off the keyboard. It implements kernel.Display
// and kernel.ButtonInput.
type Panel struct {
	mu    sync.Mutex
	lines [rows]string

	started   sync.Once
	readyCh   chan struct{}
	closeOnce sync.Once
	closed    chan struct{}

	pressCh chan uibutton.Button
	navCh   chan uibutton.Button
}

// New constructs a Panel. Call Run to start the window's event loop;
// until it runs, nothing is drawn and no button presses arrive.
func New() *Panel {
	return &Panel{
		readyCh: make(chan struct{}),
		closed:  make(chan struct{}),
		pressCh: make(chan uibutton.Button, 4),
		navCh:   make(chan uibutton.Button, 4),
	}
}

// Run starts the ebiten event loop. It blocks until the window is
// closed, so callers run it in its own goroutine (cmd/taskmgr supervises
// it alongside the tick source with an errgroup).
func (p *Panel) Run() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("taskkernel")
	ebiten.SetWindowResizable(false)
	err := ebiten.RunGame(p)
	p.closeOnce.Do(func() { close(p.closed) })
	return err
}

func (p *Panel) Update() error {
	p.started.Do(func() { close(p.readyCh) })
	select {
	case <-p.closed:
		return ebiten.Termination
	default:
	}
	for btn, key := range buttonKeys {
		if inpututil.IsKeyJustPressed(key) {
			select {
			case p.pressCh <- btn:
			default:
			}
			select {
			case p.navCh <- btn:
			default:
			}
		}
	}
	return nil
}

func (p *Panel) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 40, B: 20, A: 255})
	p.mu.Lock()
	lines := p.lines
	p.mu.Unlock()
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, padLine(line), margin, margin+i*cellHeight)
	}
}

func (p *Panel) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func padLine(s string) string {
	if len(s) > cols {
		s = s[:cols]
	}
	return s + strings.Repeat(" ", cols-len(s))
}

// DisplayErrorLine implements kernel.Display: it writes msg to the first
// line, truncated/padded to the 16-character width, and blanks the
// second (the core never writes more than one line at a time).
func (p *Panel) DisplayErrorLine(msg string) {
	p.SetLines(msg, "")
}

// SetLines sets both visible lines directly; used by cmd/taskmgr's
// task-manager UI to show process-table state outside of a fatal
// condition.
func (p *Panel) SetLines(top, bottom string) {
	p.mu.Lock()
	p.lines[0] = top
	p.lines[1] = bottom
	p.mu.Unlock()
}

// WaitForPress implements kernel.ButtonInput: blocks until any of the
// four buttons is pressed.
func (p *Panel) WaitForPress() {
	select {
	case <-p.pressCh:
	case <-p.closed:
	}
}

// WaitForRelease implements kernel.ButtonInput. The keyboard stand-in has
// no distinct press/release timing worth modeling; this discards at most
// one further buffered press without blocking and returns at once.
func (p *Panel) WaitForRelease() {
	select {
	case <-p.pressCh:
	default:
	}
}

// Nav returns the channel the task-manager UI reads identified button
// presses from. Distinct from pressCh/WaitForPress, which kernel.OSError
// uses only to learn that *some* button was pressed; both channels are
// fed from the same Update loop so navigating the task manager never
// starves a pending fatal-halt or reset confirmation, and vice versa.
func (p *Panel) Nav() <-chan uibutton.Button {
	return p.navCh
}

// String renders the current two lines for debugging/logging;
// cmd/taskmgr's task manager logs it after each render.
func (p *Panel) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("%q / %q", p.lines[0], p.lines[1])
}
