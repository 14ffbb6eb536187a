package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Visitor is a type for walking an expression tree, intended for external
// renderers. Node ids are arena indices: stable for the lifetime of the
// tree and unique per node, so duplicate operand values still map to
// distinct diagram nodes.
type Visitor interface {
	Node(id int, label string)  // gets called for every node, pre-order
	Edge(parentID, childID int) // gets called for every parent/child pair
}

// Walk walks a tree in pre-order, announcing every node and every
// parent/child edge to the visitor. A node is announced before its edges,
// an edge before the subtree it leads to.
func (t *Tree) Walk(v Visitor) {
	if t == nil || t.root == nullRef {
		return
	}
	t.walk(t.root, v)
}

func (t *Tree) walk(ref NodeRef, v Visitor) {
	n := t.nodes[ref]
	v.Node(int(ref), string(n.token))
	if n.left != nullRef {
		v.Edge(int(ref), int(n.left))
		t.walk(n.left, v)
	}
	if n.right != nullRef {
		v.Edge(int(ref), int(n.right))
		t.walk(n.right, v)
	}
}
