package segtree

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree := newLazySum(t, []int{0, 0, 0, 0, 0})
	if err := tree.UpdateRange(1, 3, 10); err != nil {
		t.Fatalf("UpdateRange failed: %v", err)
	}
	var b strings.Builder
	if err := Tree2Dot(tree, &b); err != nil {
		t.Fatalf("Tree2Dot failed: %v", err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a digraph")
	}
	if !strings.Contains(dot, `"1" [label="30"`) {
		t.Errorf("expected root labelled 30")
	}
	if !strings.Contains(dot, `"10" [label="@2\n0\n⟨10⟩"`) {
		t.Errorf("expected pending update on leaf 2")
	}
	if !strings.Contains(dot, `"7" [label=""`) {
		t.Errorf("expected padding subtree [6,7] as empty node")
	}
	if strings.Count(dot, "->") != 14 {
		t.Errorf("expected 14 edges, have %d", strings.Count(dot, "->"))
	}
}
