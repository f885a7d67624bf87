package render

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// ErrNilArgument is returned if a renderer is called with a nil arena or writer.
var ErrNilArgument = errors.New("render: illegal argument: nil")

var setupGraphemes sync.Once

// Print outputs an arena to stdout. If config is nil, ConfigFromTerminal is
// used.
func Print[V comparable](a *arbor.Arena[V], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Console(a, os.Stdout, config)
}

// Console outputs an arena to w, one line per node in storage order.
//
// Every line is indented by config.Indent once per ancestor of the node.
// Payloads carrying a kind (see payload.Object) are colored according to
// config.Colors. Display names of payloads which have one (see
// payload.Description) are aligned in a second column, as far as
// config.LineWidth allows. Widths are measured in ‘en’s, following UAX#11
// East Asian Width rules, so labels in wide scripts stay aligned.
//
// config may be nil, in which case defaults are used.
func Console[V comparable](a *arbor.Arena[V], w io.Writer, config *Config) error {
	if a == nil || w == nil {
		return ErrNilArgument
	}
	config = config.normalized()
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	type line struct {
		indent, label, display string
		width                  int
		index                  int
	}
	lines := make([]line, 0, a.Len())
	column := 0
	for i, node := range a.Nodes() {
		l := line{
			indent: strings.Repeat(config.Indent, a.Depth(i)),
			label:  node.String(),
			index:  i,
		}
		if d, ok := any(node.Value()).(displayed); ok && d.HasDisplayName() {
			l.display = d.Display()
		}
		l.width = textWidth(l.indent+l.label, config.Context)
		if l.width+2 > column && l.width+2 < config.LineWidth {
			column = l.width + 2
		}
		lines = append(lines, l)
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	for _, l := range lines {
		write(l.indent)
		node, _ := a.Node(l.index)
		if k, ok := any(node.Value()).(kinded); ok && config.Colors[k.ObjectKind()] != nil {
			if err == nil {
				_, err = config.Colors[k.ObjectKind()].Fprint(w, l.label)
			}
		} else {
			write(l.label)
		}
		if l.display != "" {
			pad := column - l.width
			if pad < 1 {
				pad = 1
			}
			write(strings.Repeat(" ", pad))
			write(l.display)
		}
		write("\n")
	}
	if err != nil {
		tracer().Errorf("render console: %s", err.Error())
	}
	return err
}

// textWidth returns the width of s in ‘en’s.
func textWidth(s string, context *uax11.Context) int {
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}
