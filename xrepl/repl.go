package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/tree"
	"github.com/npillmayer/exprtree/viz"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI, where users may enter one tokenized
// arithmetic expression per line, e.g.
//
//    extree> 7 * 8 - 2 / 4
//
// The expression's notation is detected, the expression tree is built and
// printed in all three notations together with its numeric value. With
// flag `-dot`, every successfully built tree is additionally written to a
// file in GraphViz DOT format, for consumption by an external diagrammer.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	dotfile := flag.String("dot", "", "Write tree as GraphViz DOT to file")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to the expression tree builder")
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("extree> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:    repl,
		dotfile: *dotfile,
	}
	// an expression may be given as command line arguments
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		if err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	dotfile  string
	lastTree *tree.Tree
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil {
			continue // message has been printed, wait for the next line
		}
	}
	println("Good bye!")
}

// Eval processes one expression, given on a line by itself. Any failure in
// detection, conversion, building or evaluation aborts the whole pipeline
// for this line; no partial results are printed.
func (intp *Intp) Eval(line string) error {
	tokens := exprtree.Split(line)
	t, notation, err := tree.Build(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.lastTree = t
	result, err := t.Eval()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	pterm.Info.Println("Detected notation: " + notation.String())
	pterm.Info.Println("Infix   : " + t.Infix())
	pterm.Info.Println("Postfix : " + joined(t.Postfix()))
	pterm.Info.Println("Prefix  : " + joined(t.Prefix()))
	pterm.Info.Println(fmt.Sprintf("Result  : %.2f", result))
	pterm.DefaultTree.WithRoot(treeView(t)).Render()
	if intp.dotfile != "" {
		if err := intp.writeDot(); err != nil {
			pterm.Error.Println(err.Error())
			return err
		}
		pterm.Info.Println("Tree written to " + intp.dotfile)
	}
	return nil
}

func (intp *Intp) writeDot() error {
	f, err := os.Create(intp.dotfile)
	if err != nil {
		return err
	}
	defer f.Close()
	return viz.ToGraphViz(intp.lastTree, f)
}

// leveledVisitor adapts the tree walk to a pterm.LeveledList. Walk is
// pre-order and announces an edge before descending, so a child's depth is
// known by the time its node is announced.
type leveledVisitor struct {
	depth map[int]int
	ll    pterm.LeveledList
}

func (v *leveledVisitor) Node(id int, label string) {
	v.ll = append(v.ll, pterm.LeveledListItem{
		Level: v.depth[id],
		Text:  label,
	})
}

func (v *leveledVisitor) Edge(parentID, childID int) {
	v.depth[childID] = v.depth[parentID] + 1
}

// treeView renders an expression tree for display on a terminal.
func treeView(t *tree.Tree) pterm.TreeNode {
	lv := &leveledVisitor{depth: make(map[int]int)}
	t.Walk(lv)
	return pterm.NewTreeFromLeveledList(lv.ll)
}

func joined(tokens []exprtree.Token) string {
	strs := make([]string, len(tokens))
	for i, t := range tokens {
		strs[i] = string(t)
	}
	return strings.Join(strs, " ")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
