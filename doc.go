/*
Package exprtree is a small toolbox for tokenized arithmetic expressions.

Expressions arrive as pre-split tokens in one of three notations — infix,
prefix or postfix — and are turned into a binary expression tree, which
then serves as the common form for conversion and evaluation. Package
structure is as follows:

■ exprtree: The base package holds the token model: classification of
tokens into operands and operators, the closed set of arithmetic operators
with their precedences and associativities, and notation detection.

■ shunt: Package shunt converts infix token sequences to postfix using the
shunting-yard algorithm.

■ tree: Package tree builds binary expression trees from postfix or prefix
token sequences, converts a tree back to any of the three notations,
evaluates it numerically, and enumerates nodes and edges for external
renderers.

■ viz: Package viz is an adapter for diagramming tools, emitting a
GraphViz DOT description of an expression tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exprtree
