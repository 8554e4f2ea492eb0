package dbg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/htmlctx/markup"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleDocument() *markup.Document {
	doc := markup.NewDocument()
	doc.AddChild(markup.NewSection("head").
		AddChild(markup.NewElement("title").SetText("hello")))
	body := markup.NewSection("body")
	body.AddChild(markup.NewElement("h1", markup.Classes("main-text")).SetText("Test"))
	body.AddChild(markup.NewElement("hr", markup.Classes("main-line", "sep-line")).SetText("sup"))
	div := markup.NewElement("div", markup.Classes("container", "container-fluid"), markup.Attr("id", "lead"))
	div.AddChild(markup.NewElement("p").SetText("another test"))
	div.AddChild(markup.NewElement("img", markup.SelfClosing(),
		markup.Attr("src", "/icon.png"), markup.Attr("data_image", "responsive")))
	body.AddChild(div)
	return doc.AddChild(body)
}

func TestSelectExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlctx.dbg")
	defer teardown()
	//
	doc := exampleDocument()
	titles, err := Select(doc, "head > title")
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "hello", TextOf(titles[0]))
	//
	h1, err := Select(doc, "body > h1.main-text")
	require.NoError(t, err)
	require.Len(t, h1, 1)
	assert.Equal(t, "Test", TextOf(h1[0]))
	//
	hr, err := Select(doc, "hr.main-line.sep-line")
	require.NoError(t, err)
	require.Len(t, hr, 1)
	assert.Equal(t, "", TextOf(hr[0]))
	//
	imgs, err := Select(doc, "div#lead.container.container-fluid > img")
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	src, _ := AttrOf(imgs[0], "src")
	assert.Equal(t, "/icon.png", src)
	di, ok := AttrOf(imgs[0], "data-image")
	assert.True(t, ok)
	assert.Equal(t, "responsive", di)
	//
	children, err := Select(doc, "div#lead > *")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "p", children[0].Data)
	assert.Equal(t, "img", children[1].Data)
	assert.Equal(t, "another test", TextOf(children[0]))
}

func TestSelectErrors(t *testing.T) {
	_, err := Select(nil, "p")
	if !errors.Is(err, ErrNoNode) {
		t.Errorf("expected ErrNoNode for nil node, got %v", err)
	}
	_, err = Select(markup.NewElement("p"), "p[")
	if err == nil {
		t.Error("expected invalid selector to be reported")
	}
	if _, ok := AttrOf(nil, "x"); ok {
		t.Error("expected AttrOf(nil) to fail")
	}
}

func TestFind(t *testing.T) {
	doc := exampleDocument()
	elems := Find(doc, IsElement)
	if len(elems) != 6 {
		t.Fatalf("expected 6 elements in example document, found %d", len(elems))
	}
	tags := make([]string, len(elems))
	for i, e := range elems {
		tags[i] = e.TagName()
	}
	assert.Equal(t, []string{"title", "h1", "hr", "div", "p", "img"}, tags)
	assert.Len(t, Find(doc, HasTag("img")), 1)
	assert.Len(t, Find(doc, HasTag("body")), 1)
	assert.Nil(t, Find(nil, IsElement))
}

func TestTreePrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlctx.dbg")
	defer teardown()
	//
	s := TreePrint(exampleDocument())
	t.Logf("\n%s", s)
	for _, line := range []string{
		"html (document)",
		"head (section)",
		`title "hello"`,
		`h1 [class="main-text"] "Test"`,
		`hr/ [class="main-line sep-line"] "sup"`,
		`div [class="container container-fluid" id="lead"]`,
		`img/ [src="/icon.png" data-image="responsive"]`,
	} {
		if !strings.Contains(s, line) {
			t.Errorf("expected tree print to contain %q", line)
		}
	}
	if strings.Index(s, "head (section)") > strings.Index(s, "body (section)") {
		t.Error("expected head to be printed before body")
	}
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlctx.dbg")
	defer teardown()
	//
	var buf bytes.Buffer
	err := ToGraphViz(exampleDocument(), &buf)
	require.NoError(t, err)
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	// 9 nodes connected by 8 tree edges
	assert.Equal(t, 8, strings.Count(dot, "[weight=1]"))
	assert.Contains(t, dot, `label="div"`)
	assert.Contains(t, dot, `label="body" shape=Mrecord`)
	// text boxes for title, h1 and p; hr is void, its text is not drawn
	assert.Equal(t, 3, strings.Count(dot, `style="dashed"`))
	assert.Contains(t, dot, `label="\"another␣te...\""`)
}

func TestShortText(t *testing.T) {
	assert.Equal(t, "", shortText(markup.NewSection("body")))
	e := markup.NewElement("p").SetText(`say "hi"`)
	assert.Equal(t, `"\"say␣\"hi\"\""`, shortText(e))
}
