/*
Package tree implements binary expression trees.

Trees are built from postfix or prefix token sequences with a stack
discipline, or from any notation via Build, which detects the notation
first and routes infix input through package shunt. A built tree is
immutable: conversions to the three notations, numeric evaluation and the
node/edge walk only read it, so a tree may be shared freely between
goroutines.

Nodes live in an arena and reference each other by index. The index doubles
as a stable node identifier for external renderers, where duplicate operand
values must still map to distinct diagram nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("exprtree.tree")
}
