/*
Package list implements an immutable persistent list with structural sharing.

Pushing a value onto a list conses a new head cell onto the existing chain
and returns a new list handle; the original handle stays valid and
unmodified. Any number of handles may therefore alias a common suffix. Cells
are reference-counted: a cell is freed when the last handle or predecessor
cell referencing it is released.

Since a cell may be shared, values are never extracted by move: Head and
All hand out copies only, and there is no mutating operation at all.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.persistent'.
func tracer() tracing.Trace {
	return tracing.Select("lists.persistent")
}
