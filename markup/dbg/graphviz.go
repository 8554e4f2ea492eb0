package dbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/htmlctx/markup"
	"github.com/npillmayer/htmlctx/tree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	N       markup.Node
	Name    string
	Kind    string
	HasText bool
}

type edge struct {
	N1, N2 node
}

// ToGraphViz outputs a diagram for a markup tree. The diagram is in
// GraphViz (DOT) format. Sections, elements and (shortened) element text
// are drawn with different shapes.
func ToGraphViz(n markup.Node, w io.Writer) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	head := template.Must(template.New("markup").Parse(graphHeadTmpl))
	gparams.NodeTmpl = template.Must(template.New("markupnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(markupNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("markupedge").Parse(markupEdgeTmpl))
	if err := head.Execute(w, gparams); err != nil {
		return err
	}
	if n != nil {
		dict := make(map[*tree.Node[markup.Node]]node, 64)
		err := n.TreeNode().Walk(func(tn *tree.Node[markup.Node], depth int) error {
			nd := node{N: markup.NodeOf(tn), Name: fmt.Sprintf("node%05d", len(dict)+1)}
			nd.Kind, nd.HasText = kind(nd.N)
			dict[tn] = nd
			if err := gparams.NodeTmpl.Execute(w, nd); err != nil {
				return err
			}
			if depth > 0 {
				return gparams.EdgeTmpl.Execute(w, edge{dict[tn.Parent()], nd})
			}
			return nil
		})
		if err != nil {
			return err
		}
		tracer().Debugf("wrote %d nodes to GraphViz diagram", len(dict))
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func kind(n markup.Node) (string, bool) {
	switch e := n.(type) {
	case *markup.Document:
		return "document", false
	case *markup.Section:
		return "section", false
	case *markup.Element:
		return "element", e.Text() != "" && !e.IsSingle()
	}
	return "element", false
}

func shortText(n markup.Node) string {
	e, ok := n.(*markup.Element)
	if !ok {
		return ""
	}
	s := e.Text()
	if r := []rune(s); len(r) > 10 {
		s = string(r[:10]) + "..."
	}
	s = strings.Replace(s, `"`, `\"`, -1)
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return `"\"` + s + `\""`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const markupNodeTmpl = `{{ if eq .Kind "element" }}
{{ .Name }}	[ label={{ printf "%q" .N.TagName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ if .HasText }}{{ .Name }}t	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ .Name }} -> {{ .Name }}t [dir=none weight=1 style="dashed"] ;
{{ end }}{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.TagName }} shape=Mrecord style=filled fillcolor=ivory3 ] ;
{{ end }}
`

const markupEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
