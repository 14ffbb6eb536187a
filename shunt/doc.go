/*
Package shunt converts infix token sequences to postfix, using the
shunting-yard algorithm.

Infix is the only notation with parentheses and the only one where operator
precedence and associativity matter for parsing. Conversion to postfix
removes both concerns: the resulting sequence rebuilds into a tree with a
trivial stack discipline (see package tree).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shunt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.shunt'.
func tracer() tracing.Trace {
	return tracing.Select("exprtree.shunt")
}
