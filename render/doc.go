/*
Package render outputs arena trees for humans.

Three renderers are provided:

  - Console prints one line per node, indented by depth, with kinds shown
    in color and display names aligned in a second column.
  - TreePrint draws the tree with box-drawing characters.
  - HTML writes the tree as nested unordered lists; FromHTML reads such
    lists back into an arena.

Console output is the only renderer which depends on the terminal. Config
holds its parameters; ConfigFromTerminal creates one using heuristics on the
current terminal's properties.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) 2024–26, Norbert Pillmayer
All rights reserved.

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/arbor/payload"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// kinded is implemented by payloads carrying a payload.Kind, e.g. payload.Object.
type kinded interface {
	ObjectKind() payload.Kind
}

// displayed is implemented by payloads with an optional display name, e.g.
// payload.Description.
type displayed interface {
	HasDisplayName() bool
	Display() string
}
