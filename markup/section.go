package markup

import (
	"io"
	"strings"

	"github.com/npillmayer/htmlctx/tree"
)

// Section is a top-level grouping node of a document, e.g. head or body.
// Every child is rendered on a line of its own, indented by one tab.
type Section struct {
	tn  *tree.Node[Node]
	tag string
}

var _ Node = (*Section)(nil)

// NewSection creates a section for tag.
//
// Options are accepted for symmetry with NewElement, but have no effect:
// sections never render attributes.
func NewSection(tag string, opts ...Option) *Section {
	if len(opts) > 0 {
		tracer().P("tag", tag).Debugf("section ignores %d option(s)", len(opts))
	}
	s := &Section{tag: tag}
	s.tn = newTreeNode(s)
	return s
}

// TagName is part of interface Node.
func (s *Section) TagName() string {
	return s.tag
}

// TreeNode is part of interface Node.
func (s *Section) TreeNode() *tree.Node[Node] {
	return s.tn
}

// AddChild appends a child node and returns s to allow for chaining.
func (s *Section) AddChild(n Node) *Section {
	addChild(s.tn, n)
	return s
}

// With calls build with s and returns s.
func (s *Section) With(build func(*Section)) *Section {
	if build != nil {
		build(s)
	}
	return s
}

// String renders s, including a trailing newline.
func (s *Section) String() string {
	var b strings.Builder
	b.WriteString("<" + s.tag + ">\n")
	for _, ch := range s.tn.Children() {
		b.WriteByte('\t')
		b.WriteString(ch.Payload.String())
		b.WriteByte('\n')
	}
	b.WriteString("</" + s.tag + ">\n")
	return b.String()
}

// WriteTo is part of interface Node.
func (s *Section) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, s.String())
}
