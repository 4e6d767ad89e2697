/*
Package console renders segment trees on a terminal, for debugging.

Every tree level is printed on one line as a sequence of cells
`[low…high] value`, leaves last. Cells carrying a deferred range update show
it in angle brackets and are coloured with the palette's pending colour;
padding cells are dimmed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"

	"github.com/npillmayer/segtree"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

// Palette maps cell kinds to colors.
type Palette struct {
	Value   *color.Color
	Pending *color.Color
	Padding *color.Color
	Level   *color.Color
}

// DefaultPalette returns the palette used if a Config carries none.
func DefaultPalette() *Palette {
	return &Palette{
		Value:   color.New(color.FgBlue),
		Pending: color.New(color.FgRed, color.Bold),
		Padding: color.New(color.Faint),
		Level:   color.New(color.FgHiBlack),
	}
}

// Config controls console output.
type Config struct {
	LineWidth int            // cells beyond this width are elided
	Palette   *Palette       // nil selects DefaultPalette
	Context   *uax11.Context // for display width; nil selects uax11.LatinContext
}

const defaultLineWidth = 65

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context will be
// created from the environment (locale settings).
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: defaultLineWidth,
		Context:   uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	tracer().P("format", "console").Debugf("setting line length to %d", config.LineWidth)
	return config
}

// Dump prints a tree to stdout, configured from the terminal.
func Dump[T, U any](t *segtree.Tree[T, U]) error {
	return Print(t, os.Stdout, nil)
}

// Print writes a tree to w, one line per tree level. If config is nil, a
// heuristic will create a config from the current terminal's properties.
func Print[T, U any](t *segtree.Tree[T, U], w io.Writer, config *Config) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", segtree.ErrInvalidArgument)
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	width := config.LineWidth
	if width <= 0 {
		width = defaultLineWidth
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	var lines []*line
	t.EachNode(func(v segtree.NodeView[T, U]) bool {
		if v.Depth == len(lines) {
			l := &line{width: width, context: context}
			l.add(fmt.Sprintf("%2d:", v.Depth), palette.Level)
			lines = append(lines, l)
		}
		lines[v.Depth].add(cell(v), cellColor(v, palette))
		return true
	})
	for _, l := range lines {
		if _, err := io.WriteString(w, l.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func cell[T, U any](v segtree.NodeView[T, U]) string {
	var b strings.Builder
	if v.IsLeaf() {
		fmt.Fprintf(&b, "[%d] ", v.Low)
	} else {
		fmt.Fprintf(&b, "[%d…%d] ", v.Low, v.High)
	}
	if v.Padding {
		b.WriteString("·")
		return b.String()
	}
	fmt.Fprintf(&b, "%v", v.Value)
	if v.HasPending {
		fmt.Fprintf(&b, " ⟨%v⟩", v.Pending)
	}
	return b.String()
}

func cellColor[T, U any](v segtree.NodeView[T, U], palette *Palette) *color.Color {
	switch {
	case v.Padding:
		return palette.Padding
	case v.HasPending:
		return palette.Pending
	}
	return palette.Value
}

var setupGraphemes sync.Once

// displayWidth returns the number of terminal columns s occupies.
func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// line collects coloured cells up to a display width.
type line struct {
	b       strings.Builder
	used    int
	width   int
	context *uax11.Context
	elided  bool
}

func (l *line) add(s string, c *color.Color) {
	if l.elided {
		return
	}
	n := displayWidth(s, l.context)
	if l.used > 0 {
		n++
	}
	if l.used+n > l.width {
		l.b.WriteString(" …")
		l.elided = true
		return
	}
	if l.used > 0 {
		l.b.WriteString(" ")
	}
	if c != nil {
		l.b.WriteString(c.Sprint(s))
	} else {
		l.b.WriteString(s)
	}
	l.used += n
}

func (l *line) String() string {
	return l.b.String()
}
