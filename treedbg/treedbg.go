/*
Package treedbg implements helpers to debug a page tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package treedbg

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/npillmayer/pagetree/node"
	tp "github.com/xlab/treeprint"
)

// Dump renders the subtree below id as indented text, one line per node.
// Linked slots are listed after the children, instances point to their
// master.
func Dump(m node.Map, id node.ID) (string, error) {
	p := tp.New()
	if err := dumpNode(p, m, id, make(map[node.ID]bool)); err != nil {
		return "", err
	}
	return p.String(), nil
}

func dumpNode(p tp.Tree, m node.Map, id node.ID, onPath map[node.ID]bool) error {
	n, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", node.ErrUnknownNode, id)
	}
	if onPath[id] {
		return fmt.Errorf("%w: %s", node.ErrCycle, id)
	}
	onPath[id] = true
	defer delete(onPath, id)
	label := nodeLabel(n)
	if len(n.Children) == 0 && len(n.LinkedNodes) == 0 {
		p.AddNode(label)
		return nil
	}
	branch := p.AddBranch(label)
	for _, ch := range n.Children {
		if err := dumpNode(branch, m, ch, onPath); err != nil {
			return err
		}
	}
	for _, slot := range sortedSlots(n) {
		sub := branch.AddBranch("[" + slot + "]")
		if err := dumpNode(sub, m, n.LinkedNodes[slot], onPath); err != nil {
			return err
		}
	}
	return nil
}

func nodeLabel(n *node.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", n.Type, n.ID)
	if name := n.Name(); name != "" {
		fmt.Fprintf(&b, " %q", name)
	}
	if n.Hidden {
		b.WriteString(" (hidden)")
	}
	if n.BelongsTo != node.NoID {
		fmt.Fprintf(&b, " → %s", n.BelongsTo)
	}
	if len(n.HasMany) > 0 {
		fmt.Fprintf(&b, " ×%d", len(n.HasMany))
	}
	return b.String()
}

func sortedSlots(n *node.Node) []string {
	slots := make([]string, 0, len(n.LinkedNodes))
	for slot := range n.LinkedNodes {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	LinkTmpl *template.Template
}

type dotNode struct {
	N    *node.Node
	Name string
}

type dotEdge struct {
	From, To string
	Label    string
}

// ToGraphViz outputs a diagram for a page tree. The diagram is in GraphViz
// (DOT) format. Ownership is drawn as solid edges, linked slots carry the
// slot name, and instances are connected to their masters by dashed edges.
// Nodes not reachable from the root are drawn as well, without edges
// leading to them.
func ToGraphViz(m node.Map, w io.Writer) error {
	head, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("treenode").Funcs(
		template.FuncMap{
			"label": nodeLabel,
		}).Parse(treeNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("treeedge").Parse(treeEdgeTmpl))
	gparams.LinkTmpl = template.Must(template.New("instanceedge").Parse(instanceEdgeTmpl))
	if err = head.Execute(w, gparams); err != nil {
		return err
	}
	ids := make([]node.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	dict := make(map[node.ID]string, len(ids))
	for i, id := range ids {
		dict[id] = fmt.Sprintf("node%05d", i+1)
	}
	for _, id := range ids {
		if m[id] == nil {
			continue
		}
		if err := gparams.NodeTmpl.Execute(w, dotNode{m[id], dict[id]}); err != nil {
			return err
		}
	}
	for _, id := range ids {
		n := m[id]
		if n == nil {
			continue
		}
		for _, ch := range n.Children {
			if to, ok := dict[ch]; ok {
				if err := gparams.EdgeTmpl.Execute(w, dotEdge{From: dict[id], To: to}); err != nil {
					return err
				}
			}
		}
		for _, slot := range sortedSlots(n) {
			if to, ok := dict[n.LinkedNodes[slot]]; ok {
				e := dotEdge{From: dict[id], To: to, Label: slot}
				if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
					return err
				}
			}
		}
		if master, ok := dict[n.BelongsTo]; ok {
			if err := gparams.LinkTmpl.Execute(w, dotEdge{From: dict[id], To: master}); err != nil {
				return err
			}
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const treeNodeTmpl = `{{ if eq .N.Type "page" }}{{ .Name }}	[ label={{ label .N | printf "%q" }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ else }}{{ .Name }}	[ label={{ label .N | printf "%q" }} shape=ellipse style=filled fillcolor=grey95 ] ;
{{ end }}`

const treeEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1{{ if .Label }} label={{ printf "%q" .Label }}{{ end }}] ;
`

const instanceEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=back weight=0 style="dashed"] ;
`
