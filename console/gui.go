package console

import (
	"fmt"
	"sync"

	"github.com/jroimartin/gocui"
)

// gocui view names
const (
	TranslationsView = "translations"
	TLBView          = "tlb"
	StatusView       = "status"
)

// Gui console appends lines to a gocui view.
// Lines are queued and flushed from the gocui main loop, in order,
// so the console can be written from any goroutine.
type Gui struct {
	g       *gocui.Gui
	view    string
	mu      sync.Mutex
	pending []string
	reset   bool
}

// NewGui returns a console writing into the named view
func NewGui(g *gocui.Gui, view string) *Gui {
	return &Gui{g: g, view: view}
}

// WriteConsole queues the lines of msg for the view
func (c *Gui) WriteConsole(msg string) error {
	lines := splitLines(msg)
	if len(lines) == 0 {
		return nil
	}
	c.mu.Lock()
	c.pending = append(c.pending, lines...)
	c.mu.Unlock()
	c.g.Update(c.flush)
	return nil
}

// Reset clears the view before the next queued lines are shown
func (c *Gui) Reset() {
	c.mu.Lock()
	c.pending = nil
	c.reset = true
	c.mu.Unlock()
	c.g.Update(c.flush)
}

func (c *Gui) flush(g *gocui.Gui) error {
	v, err := g.View(c.view)
	if err != nil {
		// view not laid out yet, keep the lines for the next flush
		return nil
	}
	c.mu.Lock()
	lines, reset := c.pending, c.reset
	c.pending, c.reset = nil, false
	c.mu.Unlock()

	if reset {
		v.Clear()
	}
	for _, line := range lines {
		fmt.Fprintln(v, line)
	}
	return nil
}

// Layout places the translations view on the left, the TLB view on the
// right and the status view at the bottom.
func Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	split := maxX * 2 / 3
	if split < 30 {
		split = maxX - 1
	}

	if v, err := g.SetView(TranslationsView, 0, 0, split-1, maxY-8); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Translations"
		v.Autoscroll = true
	}
	if split < maxX-1 {
		if v, err := g.SetView(TLBView, split, 0, maxX-1, maxY-8); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			v.Title = "TLB"
		}
	}
	if v, err := g.SetView(StatusView, 0, maxY-7, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Autoscroll = true
	}
	return nil
}

// Quit leaves the gocui main loop
func Quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
