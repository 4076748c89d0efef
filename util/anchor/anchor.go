// Package anchor renders a line-oriented terminal UI: free messages
// scroll above a block of named lots which are redrawn in place
package anchor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	Red  = color.FgRed
	Cyan = color.FgCyan
)

type Anchor struct {
	out   io.Writer
	tty   bool
	color *color.Color
	lock  sync.Mutex
	lots  []*Lot
	drawn int
}

type Lot struct {
	anchor  *Anchor
	name    string
	message string
	closed  bool
}

// New returns an anchor writing to stdout, redrawing lots in place
// only when stdout is an interactive terminal
func New(attribute color.Attribute) *Anchor {
	return NewWriter(os.Stdout, attribute, isatty.IsTerminal(os.Stdout.Fd()) && !color.NoColor)
}

// NewWriter returns an anchor writing to out: if tty, lots are redrawn
// by moving the terminal cursor, else every update is a new line
func NewWriter(out io.Writer, attribute color.Attribute, tty bool) *Anchor {
	paint := color.New(attribute, color.Bold)
	if !tty {
		paint.DisableColor()
	}
	return &Anchor{out: out, tty: tty, color: paint}
}

func (anchor *Anchor) Printf(format string, a ...interface{}) {
	anchor.lock.Lock()
	defer anchor.lock.Unlock()

	anchor.clear()
	fmt.Fprintln(anchor.out, strings.TrimRight(fmt.Sprintf(format, a...), "\n"))
	anchor.draw()
}

// AnchorPrintf prints a message prefixed by a colored marker
func (anchor *Anchor) AnchorPrintf(format string, a ...interface{}) {
	anchor.Printf("%s %s", anchor.color.Sprint("⚓"), fmt.Sprintf(format, a...))
}

// Lot returns the lot with the given name, creating it if needed
func (anchor *Anchor) Lot(name string) *Lot {
	anchor.lock.Lock()
	defer anchor.lock.Unlock()

	for _, lot := range anchor.lots {
		if lot.name == name {
			return lot
		}
	}
	lot := &Lot{anchor: anchor, name: name}
	anchor.lots = append(anchor.lots, lot)
	return lot
}

func (anchor *Anchor) clear() {
	if !anchor.tty || anchor.drawn == 0 {
		return
	}
	for i := 0; i < anchor.drawn; i++ {
		cursor.Up(1)
		cursor.ClearLine()
	}
	cursor.HorizontalAbsolute(0)
	anchor.drawn = 0
}

func (anchor *Anchor) draw() {
	if !anchor.tty {
		return
	}
	for _, lot := range anchor.lots {
		fmt.Fprintln(anchor.out, lot.render())
	}
	anchor.drawn = len(anchor.lots)
}

func (anchor *Anchor) update(lot *Lot) {
	if anchor.tty {
		anchor.clear()
		anchor.draw()
		return
	}
	fmt.Fprintln(anchor.out, lot.render())
}

func (lot *Lot) render() string {
	marker := "…"
	if lot.closed {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s %s", lot.anchor.color.Sprint(marker), lot.anchor.color.Sprint(lot.name), lot.message)
}

func (lot *Lot) Printf(format string, a ...interface{}) {
	lot.anchor.lock.Lock()
	defer lot.anchor.lock.Unlock()

	lot.message = fmt.Sprintf(format, a...)
	lot.anchor.update(lot)
}

// Close marks the lot as done, optionally replacing its message
func (lot *Lot) Close(message ...string) {
	lot.anchor.lock.Lock()
	defer lot.anchor.lock.Unlock()

	if len(message) > 0 {
		lot.message = strings.Join(message, " ")
	}
	lot.closed = true
	lot.anchor.update(lot)
}

// Wipe removes the lot from the anchor
func (lot *Lot) Wipe() {
	lot.anchor.lock.Lock()
	defer lot.anchor.lock.Unlock()

	lot.anchor.clear()
	for i, other := range lot.anchor.lots {
		if other == lot {
			lot.anchor.lots = append(lot.anchor.lots[:i], lot.anchor.lots[i+1:]...)
			break
		}
	}
	lot.anchor.draw()
}
