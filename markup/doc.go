/*
Package markup is a small embedded DSL to build an HTML document tree and
serialize it.

Overview

A document is built from three kinds of nodes:

   Document   the root; wraps everything into <html>…</html> and flushes
              the markup to a file or to stdout when it is closed
   Section    a top-level grouping node like head or body
   Element    an arbitrary tag with text, attributes and optional children

Children are accumulated with AddChild, which returns the receiver to allow
for chaining. Scoped building is done with With, which hands the node to a
function and returns after the function has run:

   doc := markup.NewDocument(markup.ToFile("index.html"))
   err := doc.With(func(doc *markup.Document) {
       doc.AddChild(markup.NewSection("head").With(func(head *markup.Section) {
           head.AddChild(markup.NewElement("title").SetText("hello"))
       }))
   })

Leaving the scope of a Document (With returns, or Close is called) renders
the tree and writes it out. Leaving the scope of any other node does nothing.

Rendering

Text and attribute values are copied into the markup verbatim; there is no
escaping and no validation of tag or attribute names. Elements with a tag
name listed by VoidTags render as self-closing tags (<br/>) as long as they do
not have children. Option SelfClosing() forces this behaviour for any tag
name.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlctx.markup'.
func tracer() tracing.Trace {
	return tracing.Select("htmlctx.markup")
}
