package markup

import (
	"io"
	"strings"

	"github.com/npillmayer/htmlctx/tree"
)

// Element is a node for an arbitrary HTML tag. It holds text content,
// attributes and optional children.
type Element struct {
	tn          *tree.Node[Node]
	tag         string
	text        string
	attrs       *Attributes
	selfClosing bool // set by option SelfClosing
}

var _ Node = (*Element)(nil)

// NewElement creates an element for tag. Options may set classes,
// attributes and force the element to be self-closing.
func NewElement(tag string, opts ...Option) *Element {
	conf := newConfig(opts)
	e := &Element{
		tag:         tag,
		attrs:       conf.attributes(),
		selfClosing: conf.selfClosing,
	}
	e.tn = newTreeNode(e)
	return e
}

// TagName is part of interface Node.
func (e *Element) TagName() string {
	return e.tag
}

// TreeNode is part of interface Node.
func (e *Element) TreeNode() *tree.Node[Node] {
	return e.tn
}

// Text returns the text content of e.
func (e *Element) Text() string {
	return e.text
}

// SetText sets the text content of e. Text of single elements is not rendered.
func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

// Attributes returns the attributes of e. Clients may modify them.
func (e *Element) Attributes() *Attributes {
	return e.attrs
}

// IsSingle returns true if e is rendered as a self-closing tag, either
// because its tag name is a void element or because option SelfClosing
// has been set.
//
// Forcing a non-void tag to be self-closing is kept from the behaviour
// this package has always had, even though it produces markup like
// <div/>.
func (e *Element) IsSingle() bool {
	return e.selfClosing || IsVoid(e.tag)
}

// AddChild appends a child node and returns e to allow for chaining.
func (e *Element) AddChild(n Node) *Element {
	addChild(e.tn, n)
	return e
}

// With calls build with e and returns e. It is used to scope the
// construction of the children of e:
//
//    div := markup.NewElement("div").With(func(div *markup.Element) {
//        div.AddChild(markup.NewElement("p").SetText("hello"))
//    })
//
func (e *Element) With(build func(*Element)) *Element {
	if build != nil {
		build(e)
	}
	return e
}

// String renders e and its children. Children are put on lines of their
// own, indented by two tabs; the closing tag is indented by one tab.
// An element with children always gets a closing tag, even if it is single;
// its text is dropped in that case.
func (e *Element) String() string {
	var b strings.Builder
	attrs := e.attrs.String()
	if e.tn.ChildCount() > 0 {
		e.openTag(&b, attrs)
		b.WriteByte('>')
		if e.text != "" && !e.IsSingle() {
			b.WriteString(e.text)
		}
		for _, ch := range e.tn.Children() {
			b.WriteString("\n\t\t")
			b.WriteString(ch.Payload.String())
		}
		b.WriteString("\n\t</")
		b.WriteString(e.tag)
		b.WriteByte('>')
		return b.String()
	}
	e.openTag(&b, attrs)
	if e.IsSingle() {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteByte('>')
	b.WriteString(e.text)
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
	return b.String()
}

func (e *Element) openTag(b *strings.Builder, attrs string) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	if attrs != "" {
		b.WriteByte(' ')
		b.WriteString(attrs)
	}
}

// WriteTo is part of interface Node.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, e.String())
}
