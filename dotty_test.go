package arbor

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestArena2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	a := sampleArena(t)
	var sb strings.Builder
	Arena2Dot(a, &sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT digraph:\n%s", dot)
	}
	for _, edge := range []string{`"0" -> "1"`, `"0" -> "2"`, `"3" -> "6"`} {
		if !strings.Contains(dot, edge) {
			t.Errorf("expected edge %s in DOT output", edge)
		}
	}
	if strings.Count(dot, "->") != a.Len()-1 {
		t.Errorf("expected %d edges, have %d", a.Len()-1, strings.Count(dot, "->"))
	}
}
