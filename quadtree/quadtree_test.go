package quadtree

import (
	"testing"

	"github.com/phanxgames/stagewright"
)

func rect(x, y, w, h float64) stagewright.Rect {
	return stagewright.Rect{X: x, Y: y, Width: w, Height: h}
}

func TestQueryPointScenario(t *testing.T) {
	tr := New[string](rect(0, 0, 100, 100), DefaultConfig())
	tr.Insert("A", rect(0, 0, 10, 10))
	tr.Insert("B", rect(20, 20, 30, 30))

	if ids := idsOf(tr.QueryPoint(stagewright.Vec2{X: 5, Y: 5})); !equalSet(ids, []string{"A"}) {
		t.Errorf("QueryPoint(5,5) = %v, want [A]", ids)
	}
	if ids := idsOf(tr.QueryPoint(stagewright.Vec2{X: 25, Y: 25})); !equalSet(ids, []string{"B"}) {
		t.Errorf("QueryPoint(25,25) = %v, want [B]", ids)
	}
	if ids := idsOf(tr.QueryPoint(stagewright.Vec2{X: 15, Y: 15})); len(ids) != 0 {
		t.Errorf("QueryPoint(15,15) = %v, want []", ids)
	}
}

func TestInsertThenQueryRectContainsEntry(t *testing.T) {
	tr := New[int](rect(0, 0, 1000, 1000), DefaultConfig())
	for i := 0; i < 40; i++ {
		x := float64(i%10) * 90
		y := float64(i/10) * 90
		tr.Insert(i, rect(x, y, 10, 10))
	}
	for i := 0; i < 40; i++ {
		x := float64(i%10) * 90
		y := float64(i/10) * 90
		r := rect(x, y, 10, 10)
		found := false
		for _, e := range tr.QueryRect(r) {
			if e.ID == i {
				found = true
			}
		}
		if !found {
			t.Errorf("entry %d not found via QueryRect(its own rect)", i)
		}
	}
}

func TestRemoveAllLeavesEmptyTree(t *testing.T) {
	tr := New[int](rect(0, 0, 1000, 1000), DefaultConfig())
	for i := 0; i < 40; i++ {
		x := float64(i%10) * 90
		y := float64(i/10) * 90
		tr.Insert(i, rect(x, y, 10, 10))
	}
	for i := 0; i < 40; i++ {
		if !tr.Remove(i) {
			t.Fatalf("Remove(%d) returned false", i)
		}
	}
	if tr.SubTreeCount() != 0 {
		t.Errorf("SubTreeCount = %d, want 0", tr.SubTreeCount())
	}
	if tr.HasChildren() {
		t.Error("expected tree to have collapsed all children")
	}
	if tr.Count() != 0 {
		t.Errorf("Count = %d, want 0", tr.Count())
	}
}

func TestInsertSplitsPastCapacity(t *testing.T) {
	cfg := DefaultConfig()
	tr := New[int](rect(0, 0, 100, 100), cfg)
	for i := 0; i < cfg.MaxChildren+4; i++ {
		x := float64(i%4) * 5
		y := float64(i/4) * 5
		tr.Insert(i, rect(x, y, 4, 4))
	}
	if !tr.HasChildren() {
		t.Error("expected tree to split after exceeding max_children")
	}
}

func TestDuplicateRejectionWhenDisallowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowDuplicates = false
	tr := New[int](rect(0, 0, 100, 100), cfg)
	tr.Insert(1, rect(0, 0, 10, 10))
	tr.Insert(2, rect(0, 0, 10, 10+cfg.Epsilon/2))
	if tr.Count() != 1 {
		t.Errorf("Count = %d, want 1 (close duplicate should be rejected)", tr.Count())
	}
}

func TestDuplicateAllowedByDefault(t *testing.T) {
	tr := New[int](rect(0, 0, 100, 100), DefaultConfig())
	tr.Insert(1, rect(0, 0, 10, 10))
	tr.Insert(2, rect(0, 0, 10, 10))
	if tr.Count() != 2 {
		t.Errorf("Count = %d, want 2 (duplicates allowed by default)", tr.Count())
	}
}

func TestQueryDiskAndRay(t *testing.T) {
	tr := New[string](rect(0, 0, 100, 100), DefaultConfig())
	tr.Insert("A", rect(40, 40, 10, 10))

	if ids := idsOf(tr.QueryDisk(stagewright.Vec2{X: 45, Y: 45}, 1)); !equalSet(ids, []string{"A"}) {
		t.Errorf("QueryDisk inside rect = %v, want [A]", ids)
	}
	if ids := idsOf(tr.QueryDisk(stagewright.Vec2{X: 0, Y: 0}, 5)); len(ids) != 0 {
		t.Errorf("QueryDisk far away = %v, want []", ids)
	}
	if ids := idsOf(tr.QueryRay(stagewright.Vec2{X: 0, Y: 45}, stagewright.Vec2{X: 1, Y: 0})); !equalSet(ids, []string{"A"}) {
		t.Errorf("QueryRay through rect = %v, want [A]", ids)
	}
	if ids := idsOf(tr.QueryRay(stagewright.Vec2{X: 0, Y: 0}, stagewright.Vec2{X: 1, Y: 0})); len(ids) != 0 {
		t.Errorf("QueryRay missing rect = %v, want []", ids)
	}
}

func idsOf(entries []Entry[string]) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func equalSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[string]bool, len(want))
	for _, w := range want {
		seen[w] = true
	}
	for _, g := range got {
		if !seen[g] {
			return false
		}
	}
	return true
}
