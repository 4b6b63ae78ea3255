/*
Package stack implements a LIFO stack backed by a singly-linked chain of
exclusively owned nodes.

Ownership is a strict chain: the stack owns its head node, the head node
owns its successor, and so on. No node is ever reachable through more than
one link, which is what makes handing out value pointers (PeekRef, Refs)
safe without any runtime bookkeeping. Clients in turn must not mutate the
stack while they hold such a pointer or while a walk is in progress.

Teardown is always iterative. A naive recursive release of the ownership
chain would nest once per node and exhaust the call stack on long chains.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.stack'.
func tracer() tracing.Trace {
	return tracing.Select("lists.stack")
}
