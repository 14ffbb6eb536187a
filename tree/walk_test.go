package tree

import (
	"testing"

	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type countingVisitor struct {
	nodes map[int]string
	edges [][2]int
}

func (v *countingVisitor) Node(id int, label string) {
	v.nodes[id] = label
}

func (v *countingVisitor) Edge(parentID, childID int) {
	v.edges = append(v.edges, [2]int{parentID, childID})
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.tree")
	defer teardown()
	//
	tr, err := FromPostfix(exprtree.Split("7 8 * 2 4 / -"))
	if err != nil {
		t.Fatal(err)
	}
	v := &countingVisitor{nodes: make(map[int]string)}
	tr.Walk(v)
	if len(v.nodes) != 7 { // ids are unique, duplicate labels are not
		t.Errorf("walk should announce 7 distinct nodes, announced %d", len(v.nodes))
	}
	if len(v.edges) != 6 { // a tree has n-1 edges
		t.Errorf("walk should announce 6 edges, announced %d", len(v.edges))
	}
	if v.nodes[int(tr.Root())] != "-" {
		t.Errorf("root node should be labeled \"-\", is %q", v.nodes[int(tr.Root())])
	}
	for _, e := range v.edges {
		if _, ok := v.nodes[e[0]]; !ok {
			t.Errorf("edge references unknown parent %d", e[0])
		}
		if _, ok := v.nodes[e[1]]; !ok {
			t.Errorf("edge references unknown child %d", e[1])
		}
	}
}

func TestWalkDuplicateOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.tree")
	defer teardown()
	//
	tr, err := FromPostfix(exprtree.Split("3 3 +"))
	if err != nil {
		t.Fatal(err)
	}
	v := &countingVisitor{nodes: make(map[int]string)}
	tr.Walk(v)
	if len(v.nodes) != 3 {
		t.Errorf("equal operand values must keep distinct node ids")
	}
}
