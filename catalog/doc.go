/*
Package catalog grows arena trees from external systems.

A catalog tree describes the objects of a system like BigQuery or SQL Server:
servers or projects at the top, then databases or datasets, schemas, tables
and columns. Nodes are not known in advance; they are fetched level by level
from a Host, which is usually a wrapper around some command line client of the
system. A Host is asked for the children of a single node at a time and
answers with a list of Child records, which Fold inserts into the arena.

Systems pairs an arena with the type of the system it describes and guards
it with a mutex. A Loader runs a small pool of goroutines fetching children
from a Host and folding them into a Systems tree. Every completed request is
broadcast as an Event to all subscribers.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) 2024–26, Norbert Pillmayer
All rights reserved.

Please refer to the LICENSE file for details.
*/
package catalog

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
