/*
Package tree implements a small ordered tree type.

Every node of a markup document is backed by a tree node of this package.
The tree keeps children in the order they have been added and offers a
depth-first walk over a (sub-)tree. Nodes carry a payload of arbitrary
type; markup nodes set the payload to reference themselves, which lets
clients get from the generic tree node back to the markup node.

Trees are built and read by a single caller. Nothing in this package is
safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlctx.tree'.
func tracer() tracing.Trace {
	return tracing.Select("htmlctx.tree")
}
