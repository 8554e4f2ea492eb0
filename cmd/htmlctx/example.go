package main

import (
	"github.com/npillmayer/htmlctx/markup"
)

// buildExample adds a head and a body section to doc.
//
// The hr element is given a text, which is not rendered: hr is a void
// element.
func buildExample(doc *markup.Document) {
	doc.AddChild(markup.NewSection("head").With(func(head *markup.Section) {
		head.AddChild(markup.NewElement("title").SetText("hello"))
	}))
	doc.AddChild(markup.NewSection("body").With(func(body *markup.Section) {
		body.AddChild(markup.NewElement("h1", markup.Classes("main-text")).SetText("Test"))
		body.AddChild(markup.NewElement("hr", markup.Classes("main-line", "sep-line")).SetText("sup"))
		body.AddChild(markup.NewElement("div",
			markup.Classes("container", "container-fluid"),
			markup.Attr("id", "lead"),
		).With(func(div *markup.Element) {
			div.AddChild(markup.NewElement("p").SetText("another test"))
			div.AddChild(markup.NewElement("img",
				markup.SelfClosing(),
				markup.Attr("src", "/icon.png"),
				markup.Attr("data_image", "responsive"),
			))
		}))
	}))
}
