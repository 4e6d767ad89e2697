package segtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes carrying a pending update are highlighted,
// subtrees consisting of padding only are drawn as empty circles.
func Tree2Dot[T, U any](t *Tree[T, U], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	t.EachNode(func(v NodeView[T, U]) bool {
		if v.Padding {
			nodelist.WriteString(fmt.Sprintf("\"%d\" %s;\n", v.Index, emptyNode()))
		} else {
			label := fmt.Sprintf("%v", v.Value)
			if v.HasPending {
				label += fmt.Sprintf("\\n⟨%v⟩", v.Pending)
			}
			if v.IsLeaf() {
				label = fmt.Sprintf("@%d\\n%s", v.Low, label)
			}
			styles := nodeDotStyles(v.IsLeaf(), v.HasPending, v.Depth)
			nodelist.WriteString(fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", v.Index, label, styles))
		}
		if !v.IsLeaf() {
			edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\";\n", v.Index, 2*v.Index))
			edgelist.WriteString(fmt.Sprintf("\"%d\" -> \"%d\";\n", v.Index, 2*v.Index+1))
		}
		return true
	})
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("segtree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool, highlight bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[depth%len(hexhlcolors)])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth%len(hexcolors)])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
