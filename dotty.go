package arbor

import (
	"fmt"
	"io"
	"strings"
)

// Arena2Dot outputs the internal structure of an arena in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their index and value;
// the node at the cursor position is highlighted.
func Arena2Dot[V comparable](a *Arena[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	cur, hasCursor := a.Cursor()
	nodelist, edgelist := "", ""
	for i, node := range a.Nodes() {
		label := fmt.Sprintf("#%d\\n%s", i, dotEscape(node.String()))
		styles := nodeDotStyles(a.Depth(i), node.IsLeaf(), hasCursor && i == cur)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", i, label, styles)
		for _, ch := range node.children {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", i, ch)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func nodeDotStyles(depth int, isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black"
		s += ",shape=ellipse"
	}
	if depth >= len(hexcolors) {
		depth = len(hexcolors) - 1
	}
	if highlight {
		s = s + fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[depth])
	} else {
		s = s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
