package viz

import (
	"strings"
	"testing"

	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/exprtree/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exprtree.tree")
	defer teardown()
	//
	tr, err := tree.FromPostfix(exprtree.Split("3 4 +"))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := ToGraphViz(tr, &b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	if !strings.HasPrefix(dot, "digraph exprtree {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT digraph:\n%s", dot)
	}
	for _, label := range []string{`[label="3"]`, `[label="4"]`, `[label="+"]`} {
		if !strings.Contains(dot, label) {
			t.Errorf("output should contain %s:\n%s", label, dot)
		}
	}
	if strings.Count(dot, "->") != 2 {
		t.Errorf("output should contain 2 edges:\n%s", dot)
	}
}
