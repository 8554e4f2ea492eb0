package markup_test

import (
	"fmt"

	"github.com/npillmayer/htmlctx/markup"
)

func ExampleNewElement() {
	img := markup.NewElement("img",
		markup.Attr("src", "/icon.png"),
		markup.Attr("data_image", "responsive"))
	fmt.Println(img)
	h1 := markup.NewElement("h1", markup.Classes("main-text", "large")).SetText("Test")
	fmt.Println(h1)
	// Output:
	// <img src="/icon.png" data-image="responsive"/>
	// <h1 class="main-text large">Test</h1>
}
