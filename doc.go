/*
Package arbor offers an index-addressed tree, sometimes called an arena tree.

Arena Trees

An arena tree stores all of its nodes in a single, densely packed slice. Nodes
do not point to each other; instead every node records the integer position of
its parent and the positions of its children. This avoids reference cycles
altogether, gives O(1) random access to every node, and makes copying,
re-indexing and splicing of whole subtrees a matter of integer arithmetic.

An arena is created empty

	a := arbor.New[payload.Label]()

and grown either incrementally, with a cursor pointing at the node new children
are appended to,

	a.AddRootNode("server")
	a.AddChildNode("database")

or in bulk from nested maps (see FromNested and FromMap2 … FromMap6).

Indices handed out by an arena are only meaningful for that very arena.
Operations which move nodes around (Merge, SwapNodes) rewrite every reference
inside the arena, but cannot know about indices kept by clients.

Invariants

After every exported operation, an arena satisfies the following:

1. It has exactly one root, i.e. one node without a parent, or no nodes at all.

2. Parent and child links are symmetric: if p lists c as a child, c's parent
is p, and vice versa.

3. Every stored index refers to a live position of the same arena.

4. Following parent links from any node reaches the root in at most Len() steps.

Arena.Check will validate these and is used heavily in the tests.

Arenas are not safe for concurrent mutation. Clients which need concurrent
readers during a write must guard the arena as a whole.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// ArenaError is an error type for the arbor module
type ArenaError string

func (e ArenaError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an index does not address a live
// node of an arena.
const ErrIndexOutOfBounds = ArenaError("index out of bounds")

// ErrNoCursor signals that an operation needs a current position, but the
// arena's cursor has not been set yet.
const ErrNoCursor = ArenaError("no current position")

// ErrRootExists is flagged when a second root is to be added to an arena.
const ErrRootExists = ArenaError("arena already has a root node")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ArenaError("illegal arguments")

// ErrBrokenInvariant is flagged by Check if an arena's structure is inconsistent.
const ErrBrokenInvariant = ArenaError("arena invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
