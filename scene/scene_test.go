package scene

import (
	"math"
	"testing"

	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/library"
	"github.com/phanxgames/stagewright/quadtree"
	"github.com/phanxgames/stagewright/shape"
	"github.com/phanxgames/stagewright/tween"
)

func TestRootOnlyInitialization(t *testing.T) {
	g := New(library.New())
	root := stagewright.NewContainerId()
	if err := g.CreateRoot(root); err != nil {
		t.Fatal(err)
	}
	g.Tick(0)

	if !g.Exists(root) {
		t.Fatal("root does not exist")
	}
	if got := g.containers[root].worldTransform; got != stagewright.IdentityAffine {
		t.Errorf("root world transform = %v, want identity", got)
	}
}

func TestCreatePresentCascadeRemove(t *testing.T) {
	lib := library.New()
	shapeID := stagewright.NewLibraryId()
	edges := shape.NewRect(stagewright.Vec2{X: 30, Y: 30}, stagewright.IdentityAffine)
	lib.AddShape(shapeID, shape.NewFill(edges, stagewright.Color{R: 1, A: 1}))

	g := New(lib)
	root := stagewright.NewContainerId()
	g.CreateRoot(root)

	c1 := stagewright.NewContainerId()
	c2 := stagewright.NewContainerId()
	g.CreateContainer(c1, root)
	g.SetDisplay(c1, shapeID, DisplayVector)
	g.SetBoundsFromDisplay(c1)
	g.CreateContainer(c2, c1)
	g.SetDisplay(c2, shapeID, DisplayVector)
	g.SetBoundsFromDisplay(c2)

	g.Tick(1.0)

	items := g.Drawables()
	if len(items) != 2 {
		t.Fatalf("got %d drawables, want 2", len(items))
	}
	if items[0].ContainerID != c1 || items[1].ContainerID != c2 {
		t.Errorf("BFS order wrong: got %v then %v", items[0].ContainerID, items[1].ContainerID)
	}
	for _, it := range items {
		if it.WorldTransform != stagewright.IdentityAffine {
			t.Errorf("container %v world transform = %v, want identity", it.ContainerID, it.WorldTransform)
		}
	}

	g.RemoveContainer(c1, true)
	if g.Exists(c1) || g.Exists(c2) {
		t.Fatal("expected both C1 and C2 to be absent after cascade remove")
	}
}

func TestTransformTweenAdvancesOverFrames(t *testing.T) {
	g := New(library.New())
	root := stagewright.NewContainerId()
	g.CreateRoot(root)

	c := stagewright.NewContainerId()
	g.CreateContainer(c, root)

	start := stagewright.IdentitySRT()
	end := stagewright.IdentitySRT()
	end.Rotation = math.Pi / 2
	g.AddTween(c, tween.NewTransform(start, end, stagewright.EasingLinear, 0, 5.0/60.0))

	for i := 0; i < 5; i++ {
		g.Tick(1.0 / 60.0)
	}

	// The authored base is never mutated by a tween; only effective values
	// change, so check the tween's result via the world transform it fed.
	wt := g.containers[c].worldTransform
	wantAngle := math.Pi / 2
	gotAngle := math.Atan2(wt[1], wt[0])
	const eps = 1e-5
	if math.Abs(gotAngle-wantAngle) > eps {
		t.Errorf("world transform rotation = %v, want %v", gotAngle, wantAngle)
	}
	if len(g.containers[c].tweens) != 0 {
		t.Errorf("expected tween list to be empty after completion, got %d", len(g.containers[c].tweens))
	}
}

func TestRemoveContainerCascadeLeavesNoDescendantReachable(t *testing.T) {
	g := New(library.New())
	root := stagewright.NewContainerId()
	g.CreateRoot(root)

	a := stagewright.NewContainerId()
	b := stagewright.NewContainerId()
	c := stagewright.NewContainerId()
	g.CreateContainer(a, root)
	g.CreateContainer(b, a)
	g.CreateContainer(c, b)

	g.RemoveContainer(a, true)
	for _, id := range []stagewright.ContainerId{a, b, c} {
		if g.Exists(id) {
			t.Errorf("container %v still reachable after cascade remove", id)
		}
	}
}

func TestSpatialQueryPointScenario(t *testing.T) {
	// Exercised through the Graph/quadtree wiring.
	g := New(library.New())
	root := stagewright.NewContainerId()
	g.CreateRoot(root)
	g.AddLayer(1, stagewright.Rect{X: 0, Y: 0, Width: 100, Height: 100}, quadtree.DefaultConfig())

	a := stagewright.NewContainerId()
	b := stagewright.NewContainerId()
	g.CreateContainer(a, root)
	g.SetBoundsDefined(a, stagewright.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	g.AddToLayer(a, 1)

	g.CreateContainer(b, root)
	g.SetBoundsDefined(b, stagewright.Rect{X: 20, Y: 20, Width: 10, Height: 10})
	g.AddToLayer(b, 1)

	g.Tick(0)

	if got := g.SpatialQueryPoint(1, stagewright.Vec2{X: 5, Y: 5}); len(got) != 1 || got[0] != a {
		t.Errorf("query (5,5) = %v, want {A}", got)
	}
	if got := g.SpatialQueryPoint(1, stagewright.Vec2{X: 25, Y: 25}); len(got) != 1 || got[0] != b {
		t.Errorf("query (25,25) = %v, want {B}", got)
	}
	if got := g.SpatialQueryPoint(1, stagewright.Vec2{X: 15, Y: 15}); len(got) != 0 {
		t.Errorf("query (15,15) = %v, want {}", got)
	}
}

func TestWorldTransformComposesWithParent(t *testing.T) {
	g := New(library.New())
	root := stagewright.NewContainerId()
	g.CreateRoot(root)

	parent := stagewright.NewContainerId()
	g.CreateContainer(parent, root)
	g.SetLocalTransform(parent, stagewright.ScaleRotationTranslation{ScaleX: 1, ScaleY: 1, TranslateX: 10, TranslateY: 0})

	child := stagewright.NewContainerId()
	g.CreateContainer(child, parent)
	g.SetLocalTransform(child, stagewright.ScaleRotationTranslation{ScaleX: 1, ScaleY: 1, TranslateX: 5, TranslateY: 0})

	g.Tick(0)

	wt := g.containers[child].worldTransform
	if wt[4] != 15 {
		t.Errorf("child world transform tx = %v, want 15", wt[4])
	}
}
