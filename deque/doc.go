/*
Package deque implements a doubly-linked deque with asymmetric ownership
and runtime borrow tracking.

Forward links (next) are strong: they keep their target alive, and the
chain of next links from the deque's front handle is the sole ownership
path through the structure. Backward links (prev) are weak: they never
contribute to a node's lifetime and may observe that their target is
already gone. Were prev links owning too, every adjacent pair of nodes
would form a reference cycle and no node would ever be released; the
asymmetry is what makes bidirectional linking safe.

Because nodes are shared between the two end handles and their neighbours,
value access goes through per-node borrow tracking: at most one exclusive
(RefMut) or any number of shared (Ref) borrows may be live on one node.
A conflicting acquisition fails with ErrBorrowConflict at the call site;
guards must be released before the next structural operation on the same
node.

The deque is a single-threaded structure. The borrow tracker guards against
aliasing bugs within one goroutine, not against concurrent access.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package deque

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.deque'.
func tracer() tracing.Trace {
	return tracing.Select("lists.deque")
}

// assertThat panics on violations of the package's usage contract, e.g.
// popping a node while a borrow guard on it is live.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("deque: "+msg, msgargs...)
		panic(msg)
	}
}
