package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strings"

	"github.com/npillmayer/exprtree"
)

// Infix returns the infix rendering of a tree, fully parenthesized:
// every operator node is wrapped in parentheses, so the rendering is
// unambiguous regardless of precedence. An operand leaf renders as its
// token, an empty tree as the empty string.
func (t *Tree) Infix() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	t.infix(t.root, &b)
	return b.String()
}

func (t *Tree) infix(ref NodeRef, b *strings.Builder) {
	if ref == nullRef {
		return
	}
	n := t.nodes[ref]
	if n.left == nullRef && n.right == nullRef {
		b.WriteString(string(n.token))
		return
	}
	b.WriteByte('(')
	t.infix(n.left, b)
	b.WriteByte(' ')
	b.WriteString(string(n.token))
	b.WriteByte(' ')
	t.infix(n.right, b)
	b.WriteByte(')')
}

// Postfix returns the postfix token sequence of a tree: left subtree,
// right subtree, node.
func (t *Tree) Postfix() []exprtree.Token {
	if t == nil {
		return nil
	}
	out := make([]exprtree.Token, 0, len(t.nodes))
	t.postfix(t.root, &out)
	return out
}

func (t *Tree) postfix(ref NodeRef, out *[]exprtree.Token) {
	if ref == nullRef {
		return
	}
	n := t.nodes[ref]
	t.postfix(n.left, out)
	t.postfix(n.right, out)
	*out = append(*out, n.token)
}

// Prefix returns the prefix token sequence of a tree: node, left subtree,
// right subtree.
func (t *Tree) Prefix() []exprtree.Token {
	if t == nil {
		return nil
	}
	out := make([]exprtree.Token, 0, len(t.nodes))
	t.prefix(t.root, &out)
	return out
}

func (t *Tree) prefix(ref NodeRef, out *[]exprtree.Token) {
	if ref == nullRef {
		return
	}
	n := t.nodes[ref]
	*out = append(*out, n.token)
	t.prefix(n.left, out)
	t.prefix(n.right, out)
}
