package scene

import (
	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/quadtree"
)

// SpatialQueryRect returns the ids of every container on layer whose last
// computed bounds intersects r. Unknown layers return nil.
func (g *Graph) SpatialQueryRect(layer stagewright.QuadTreeLayer, r stagewright.Rect) []stagewright.ContainerId {
	tr, ok := g.layers[layer]
	if !ok {
		return nil
	}
	return ids(tr.QueryRect(r))
}

// SpatialQueryPoint returns the ids of every container on layer whose last
// computed bounds contains p.
func (g *Graph) SpatialQueryPoint(layer stagewright.QuadTreeLayer, p stagewright.Vec2) []stagewright.ContainerId {
	tr, ok := g.layers[layer]
	if !ok {
		return nil
	}
	return ids(tr.QueryPoint(p))
}

// SpatialQueryDisk returns the ids of every container on layer whose last
// computed bounds lies within radius of center.
func (g *Graph) SpatialQueryDisk(layer stagewright.QuadTreeLayer, center stagewright.Vec2, radius float64) []stagewright.ContainerId {
	tr, ok := g.layers[layer]
	if !ok {
		return nil
	}
	return ids(tr.QueryDisk(center, radius))
}

// SpatialQueryRay returns the ids of every container on layer whose last
// computed bounds is hit by the ray from origin in direction dir.
func (g *Graph) SpatialQueryRay(layer stagewright.QuadTreeLayer, origin, dir stagewright.Vec2) []stagewright.ContainerId {
	tr, ok := g.layers[layer]
	if !ok {
		return nil
	}
	return ids(tr.QueryRay(origin, dir))
}

func ids(entries []quadtree.Entry[stagewright.ContainerId]) []stagewright.ContainerId {
	if len(entries) == 0 {
		return nil
	}
	out := make([]stagewright.ContainerId, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
