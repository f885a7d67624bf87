/*
Package payload provides the values carried by the nodes of an arena tree.

An arena treats its payload as an opaque, comparable value. The types in this
package cover the common cases: a plain Label, a Description with an optional
display name, and an Object, i.e. a description tagged with a Kind drawn from a
closed enumeration (system, server, project, dataset, database, schema, table,
column).

Kinds and system types are parsed from strings and validated at construction
time; unknown names are rejected with an error before any node is created.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) 2024–26, Norbert Pillmayer
All rights reserved.

Please refer to the LICENSE file for details.
*/
package payload

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
