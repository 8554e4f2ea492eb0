/*
Package dbg implements helpers to debug a markup tree.

TreePrint and ToGraphViz visualize the structure of a tree as built, while
Select inspects the markup a tree renders to. Select parses the rendered
markup with golang.org/x/net/html and matches CSS selectors with cascadia,
which makes it handy for tests that should not depend on whitespace layout.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dbg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlctx.dbg'.
func tracer() tracing.Trace {
	return tracing.Select("htmlctx.dbg")
}
