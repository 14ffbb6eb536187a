/*
Package xrepl/main provides an interactive command line tool for expression
trees. Users enter a whitespace-separated arithmetic expression in infix,
prefix or postfix notation; the tool detects the notation, builds the
expression tree, prints all three notations and the numeric result, and
optionally writes a GraphViz rendering of the tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree'
func tracer() tracing.Trace {
	return tracing.Select("exprtree")
}
