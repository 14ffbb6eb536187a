package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/exprtree"
)

// NodeRef is the index of a node within a tree's arena. It identifies a node
// for the lifetime of its tree.
type NodeRef int32

// nullRef marks an absent child. Only operand leaves have absent children:
// an operator node always carries both.
const nullRef NodeRef = -1

// node is a binary tree node, addressing its children by arena index.
type node struct {
	token exprtree.Token
	left  NodeRef
	right NodeRef
}

// Tree is a binary expression tree. Trees are created by FromPostfix,
// FromPrefix or Build, and are immutable afterwards.
type Tree struct {
	nodes []node
	root  NodeRef
}

// leaf appends an operand leaf to the arena.
func (t *Tree) leaf(tok exprtree.Token) NodeRef {
	t.nodes = append(t.nodes, node{token: tok, left: nullRef, right: nullRef})
	return NodeRef(len(t.nodes) - 1)
}

// branch appends an operator node with two children to the arena.
func (t *Tree) branch(tok exprtree.Token, left, right NodeRef) NodeRef {
	t.nodes = append(t.nodes, node{token: tok, left: left, right: right})
	return NodeRef(len(t.nodes) - 1)
}

// Size returns the number of nodes of a tree.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Root returns the reference of the root node.
func (t *Tree) Root() NodeRef {
	if t == nil {
		return nullRef
	}
	return t.root
}

// Label returns the token held by a node.
func (t *Tree) Label(ref NodeRef) exprtree.Token {
	if t == nil || ref < 0 || int(ref) >= len(t.nodes) {
		return ""
	}
	return t.nodes[ref].token
}

// treeShape is the canonical flat form of a tree, input to Digest.
type treeShape struct {
	Labels []string
	Left   []int32
	Right  []int32
	Root   int32
}

// Digest returns a hash over the structure and labels of a tree. Two trees
// have equal digests iff they are structurally identical with identical
// tokens; node identity does not enter the hash.
func (t *Tree) Digest() string {
	shape := treeShape{Root: int32(t.normalRoot())}
	for _, n := range t.normalized() {
		shape.Labels = append(shape.Labels, string(n.token))
		shape.Left = append(shape.Left, int32(n.left))
		shape.Right = append(shape.Right, int32(n.right))
	}
	h, err := structhash.Hash(shape, 1)
	if err != nil {
		tracer().Errorf("cannot hash expression tree: %v", err)
		return ""
	}
	return h
}

// normalized returns the arena in pre-order, so that two structurally equal
// trees hash equally regardless of construction order (postfix and prefix
// builders allocate in different orders).
func (t *Tree) normalized() []node {
	if t == nil || t.root == nullRef {
		return nil
	}
	out := make([]node, 0, len(t.nodes))
	var walk func(NodeRef) NodeRef
	walk = func(ref NodeRef) NodeRef {
		n := t.nodes[ref]
		pos := NodeRef(len(out))
		out = append(out, node{token: n.token, left: nullRef, right: nullRef})
		if n.left != nullRef {
			out[pos].left = walk(n.left)
		}
		if n.right != nullRef {
			out[pos].right = walk(n.right)
		}
		return pos
	}
	walk(t.root)
	return out
}

func (t *Tree) normalRoot() NodeRef {
	if t == nil || t.root == nullRef {
		return nullRef
	}
	return 0 // pre-order puts the root first
}
