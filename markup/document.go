package markup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/htmlctx/tree"
)

// Document is the root of a markup tree. All sections of a document are
// wrapped into a single <html> element.
//
// A document has an output destination: a file, an io.Writer, or stdout if
// none is given. Closing the document renders it and writes it to this
// destination.
type Document struct {
	tn     *tree.Node[Node]
	path   string    // output file, if toFile is set
	toFile bool      // write to file at path
	w      io.Writer // output writer, if not writing to a file
}

var _ Node = (*Document)(nil)

// OutputOption sets the output destination of a document.
type OutputOption func(*Document)

// ToFile makes a document write its markup to a file, replacing the
// file's contents.
func ToFile(path string) OutputOption {
	return func(d *Document) {
		d.path = path
		d.toFile = true
		d.w = nil
	}
}

// ToWriter makes a document write its markup to w.
func ToWriter(w io.Writer) OutputOption {
	return func(d *Document) {
		d.w = w
		d.path = ""
		d.toFile = false
	}
}

// NewDocument creates an empty document. Without an output option, the
// document is written to stdout when closed.
func NewDocument(opts ...OutputOption) *Document {
	d := &Document{}
	d.tn = newTreeNode(d)
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// TagName is part of interface Node.
func (d *Document) TagName() string {
	return "html"
}

// TreeNode is part of interface Node.
func (d *Document) TreeNode() *tree.Node[Node] {
	return d.tn
}

// AddChild appends a section to the document and returns d to allow for
// chaining.
func (d *Document) AddChild(s *Section) *Document {
	if s != nil {
		addChild(d.tn, s)
	}
	return d
}

// With calls build with d, then closes d. It returns the error of Close.
func (d *Document) With(build func(*Document)) error {
	if build != nil {
		build(d)
	}
	return d.Close()
}

// Close renders the document and writes it to the output destination.
// A file receives exactly the rendered markup; a writer (or stdout)
// receives the markup followed by a newline.
//
// If writing fails, Close returns an *OutputError. Close does not change
// the document and may be called more than once.
func (d *Document) Close() error {
	out := d.String()
	if d.toFile {
		tracer().Debugf("writing document to file %s", d.path)
		if err := os.WriteFile(d.path, []byte(out), 0o644); err != nil {
			tracer().Errorf("cannot write document: %v", err)
			return &OutputError{Target: d.path, Err: err}
		}
		return nil
	}
	w, target := d.w, "writer"
	if w == nil {
		w, target = os.Stdout, "stdout"
	}
	tracer().Debugf("writing document to %s", target)
	if _, err := fmt.Fprintln(w, out); err != nil {
		tracer().Errorf("cannot write document: %v", err)
		return &OutputError{Target: target, Err: err}
	}
	return nil
}

// String renders the document.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString("<html>\n")
	for _, ch := range d.tn.Children() {
		b.WriteString(ch.Payload.String())
	}
	b.WriteString("</html>")
	return b.String()
}

// WriteTo is part of interface Node. In contrast to Close it writes to w,
// not to the document's output destination, and does not append a newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, d.String())
}
