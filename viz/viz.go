/*
Package viz renders expression trees for diagramming tools.

The core never draws anything itself: package tree exposes a node/edge walk,
and this package adapts it to the GraphViz DOT format. Feed the output to
`dot -Tpng` (or any other GraphViz layouter) to obtain a diagram.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package viz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/exprtree/tree"
)

// dotVisitor collects node and edge lines separately: DOT wants node
// declarations (with labels) before the edges referring to them.
type dotVisitor struct {
	nodes []string
	edges []string
}

func (v *dotVisitor) Node(id int, label string) {
	v.nodes = append(v.nodes, fmt.Sprintf("  n%d [label=%s];", id, strconv.Quote(label)))
}

func (v *dotVisitor) Edge(parentID, childID int) {
	v.edges = append(v.edges, fmt.Sprintf("  n%d -> n%d;", parentID, childID))
}

// ToGraphViz writes a DOT description of an expression tree to w. Nodes are
// drawn as circles labeled with their token, edges point from operators to
// their operands.
func ToGraphViz(t *tree.Tree, w io.Writer) error {
	v := &dotVisitor{}
	t.Walk(v)
	if _, err := fmt.Fprintln(w, "digraph exprtree {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  node [shape=circle];")
	for _, line := range v.nodes {
		fmt.Fprintln(w, line)
	}
	for _, line := range v.edges {
		fmt.Fprintln(w, line)
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
