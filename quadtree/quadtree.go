// Package quadtree implements a per-layer spatial index: a parameterizable
// quad-tree supporting rect, point, disk, and ray queries, with exact
// insert/split/collapse/removal policy.
//
// Grounded on original_source/fluster_core/src/quad_tree.rs, generalized
// to Go generics over the id type so one implementation serves every
// collision layer (stagewright/scene keys it by stagewright.ContainerId).
package quadtree

import "github.com/phanxgames/stagewright"

// Config parameterizes a Tree's split/collapse/duplicate behavior. The
// zero value is not usable; use DefaultConfig or fill in every field.
type Config struct {
	// AllowDuplicates, when true, always accepts a direct insertion even if
	// an existing entry has a near-identical rect.
	AllowDuplicates bool
	// MinChildren is the sub_tree_count threshold below which a node with
	// children collapses them back into itself after a removal.
	MinChildren int
	// MaxChildren is the number of direct entries a node holds before it
	// prefers to split rather than keep growing.
	MaxChildren int
	// MaxDepth caps how many times a node may be split.
	MaxDepth int
	// Epsilon is the per-corner tolerance used to detect "close enough"
	// duplicate rects when AllowDuplicates is false.
	Epsilon float64
}

// DefaultConfig returns the authoritative default configuration:
// min_children=4, max_children=16, max_depth=8, allow_duplicates=true,
// epsilon=1e-4.
func DefaultConfig() Config {
	return Config{
		AllowDuplicates: true,
		MinChildren:     4,
		MaxChildren:     16,
		MaxDepth:        8,
		Epsilon:         1e-4,
	}
}

// Entry is a single (id, rect) pair returned by queries.
type Entry[T comparable] struct {
	ID   T
	Rect stagewright.Rect
}

type node[T comparable] struct {
	bounds       stagewright.Rect
	depth        int
	entries      []Entry[T]
	children     *[4]*node[T]
	subTreeCount int
}

// Tree is a quad-tree spatial index over one collision layer.
type Tree[T comparable] struct {
	cfg   Config
	root  *node[T]
	index map[T]stagewright.Rect
}

// New builds an empty tree covering bounds with the given configuration.
func New[T comparable](bounds stagewright.Rect, cfg Config) *Tree[T] {
	return &Tree[T]{
		cfg:   cfg,
		root:  &node[T]{bounds: bounds},
		index: make(map[T]stagewright.Rect),
	}
}

// Bounds returns the tree's root AABB.
func (t *Tree[T]) Bounds() stagewright.Rect { return t.root.bounds }

// Count returns the number of live entries in the tree.
func (t *Tree[T]) Count() int { return len(t.index) }

// SubTreeCount returns the root node's sub_tree_count, used by tests to
// assert a fully-removed tree is structurally empty.
func (t *Tree[T]) SubTreeCount() int { return t.root.subTreeCount }

// HasChildren reports whether the root node still has split children.
func (t *Tree[T]) HasChildren() bool { return t.root.children != nil }

// Insert adds (id, rect) to the tree. If id is already present, its prior
// entry is removed first (Insert acts as an upsert). rect must have
// positive area and must lie within the tree's root bounds; callers (the
// UpdateQuadTree system) are responsible for that invariant. When
// AllowDuplicates is false and the rect is rejected as a close duplicate at
// every node it reaches, nothing is inserted.
func (t *Tree[T]) Insert(id T, rect stagewright.Rect) {
	if _, ok := t.index[id]; ok {
		t.Remove(id)
	}
	if insert(t.root, id, rect, t.cfg) {
		t.index[id] = rect
	}
}

func insert[T comparable](n *node[T], id T, rect stagewright.Rect, cfg Config) bool {
	containsCenter := rect.Contains(n.bounds.Center())
	atMaxDepth := n.depth >= cfg.MaxDepth
	underCapacity := len(n.entries) < cfg.MaxChildren-1

	if containsCenter || atMaxDepth || underCapacity {
		if attemptInsertSelf(n, id, rect, cfg) {
			n.subTreeCount++
			return true
		}
	}

	if n.children == nil {
		split(n, cfg)
	}

	for _, child := range n.children {
		if child.bounds.ContainsRect(rect) {
			if insert(child, id, rect, cfg) {
				n.subTreeCount++
				return true
			}
			return false
		}
	}

	// No single child fully contains the rect (it straddles a split line,
	// or lies outside every child due to floating point slop): hold it here,
	// subject to the same duplicate policy.
	if attemptInsertSelf(n, id, rect, cfg) {
		n.subTreeCount++
		return true
	}
	return false
}

// attemptInsertSelf inserts (id, rect) directly into n if permitted by the
// duplicate policy, returning whether it did.
func attemptInsertSelf[T comparable](n *node[T], id T, rect stagewright.Rect, cfg Config) bool {
	if !cfg.AllowDuplicates && hasCloseDuplicate(n.entries, rect, cfg.Epsilon) {
		return false
	}
	n.entries = append(n.entries, Entry[T]{ID: id, Rect: rect})
	return true
}

func hasCloseDuplicate[T comparable](entries []Entry[T], rect stagewright.Rect, eps float64) bool {
	for _, e := range entries {
		if closeEnough(e.Rect, rect, eps) {
			return true
		}
	}
	return false
}

func closeEnough(a, b stagewright.Rect, eps float64) bool {
	return absf(a.MinX()-b.MinX()) <= eps &&
		absf(a.MinY()-b.MinY()) <= eps &&
		absf(a.MaxX()-b.MaxX()) <= eps &&
		absf(a.MaxY()-b.MaxY()) <= eps
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// split constructs n's four quadrant children and redistributes n's
// existing direct entries into whichever single child fully contains them,
// leaving the rest on n.
func split[T comparable](n *node[T], cfg Config) {
	b := n.bounds
	halfW, halfH := b.Width/2, b.Height/2
	cx, cy := b.X+halfW, b.Y+halfH

	children := [4]*node[T]{
		{bounds: stagewright.Rect{X: b.X, Y: b.Y, Width: halfW, Height: halfH}, depth: n.depth + 1},
		{bounds: stagewright.Rect{X: cx, Y: b.Y, Width: halfW, Height: halfH}, depth: n.depth + 1},
		{bounds: stagewright.Rect{X: b.X, Y: cy, Width: halfW, Height: halfH}, depth: n.depth + 1},
		{bounds: stagewright.Rect{X: cx, Y: cy, Width: halfW, Height: halfH}, depth: n.depth + 1},
	}
	n.children = &children

	remaining := n.entries[:0:0]
	for _, e := range n.entries {
		placed := false
		for _, child := range n.children {
			if child.bounds.ContainsRect(e.Rect) {
				child.subTreeCount++
				child.entries = append(child.entries, e)
				placed = true
				break
			}
		}
		if !placed {
			remaining = append(remaining, e)
		}
	}
	n.entries = remaining
}

// Remove deletes id from the tree, returning whether it was present.
func (t *Tree[T]) Remove(id T) bool {
	rect, ok := t.index[id]
	if !ok {
		return false
	}
	delete(t.index, id)
	remove(t.root, id, rect, t.cfg)
	return true
}

func remove[T comparable](n *node[T], id T, rect stagewright.Rect, cfg Config) bool {
	found := false
	if n.children != nil {
		for _, child := range n.children {
			if child.bounds.ContainsRect(rect) {
				found = remove(child, id, rect, cfg)
				break
			}
		}
	}
	if !found {
		for i, e := range n.entries {
			if e.ID == id {
				n.entries = append(n.entries[:i], n.entries[i+1:]...)
				found = true
				break
			}
		}
	}
	if found {
		n.subTreeCount--
		if n.children != nil && n.subTreeCount < cfg.MinChildren {
			collapse(n)
		}
	}
	return found
}

// collapse promotes all descendant entries into n and drops n's children.
func collapse[T comparable](n *node[T]) {
	if n.children == nil {
		return
	}
	var gather func(c *node[T])
	gather = func(c *node[T]) {
		n.entries = append(n.entries, c.entries...)
		if c.children != nil {
			for _, gc := range c.children {
				gather(gc)
			}
		}
	}
	for _, c := range n.children {
		gather(c)
	}
	n.children = nil
}

// QueryRect returns every live entry whose rect intersects r.
func (t *Tree[T]) QueryRect(r stagewright.Rect) []Entry[T] {
	var out []Entry[T]
	queryRect(t.root, r, &out)
	return out
}

func queryRect[T comparable](n *node[T], r stagewright.Rect, out *[]Entry[T]) {
	if !n.bounds.Intersects(r) {
		return
	}
	for _, e := range n.entries {
		if e.Rect.Intersects(r) {
			*out = append(*out, e)
		}
	}
	if n.children != nil {
		for _, c := range n.children {
			queryRect(c, r, out)
		}
	}
}

// QueryPoint returns every live entry whose rect contains p. A point lies
// in at most one child, so the descent stops after the first matching
// child subtree.
func (t *Tree[T]) QueryPoint(p stagewright.Vec2) []Entry[T] {
	var out []Entry[T]
	queryPoint(t.root, p, &out)
	return out
}

func queryPoint[T comparable](n *node[T], p stagewright.Vec2, out *[]Entry[T]) {
	if !n.bounds.Contains(p) {
		return
	}
	for _, e := range n.entries {
		if e.Rect.Contains(p) {
			*out = append(*out, e)
		}
	}
	if n.children != nil {
		for _, c := range n.children {
			if c.bounds.Contains(p) {
				queryPoint(c, p, out)
				break
			}
		}
	}
}

// QueryDisk returns every live entry whose rect contains p, or whose
// distance from p is strictly less than radius.
func (t *Tree[T]) QueryDisk(p stagewright.Vec2, radius float64) []Entry[T] {
	var out []Entry[T]
	queryDisk(t.root, p, radius, &out)
	return out
}

func queryDisk[T comparable](n *node[T], p stagewright.Vec2, radius float64, out *[]Entry[T]) {
	if !n.bounds.Contains(p) && n.bounds.DistanceFrom(p) >= radius {
		return
	}
	for _, e := range n.entries {
		if e.Rect.Contains(p) || e.Rect.DistanceFrom(p) < radius {
			*out = append(*out, e)
		}
	}
	if n.children != nil {
		for _, c := range n.children {
			queryDisk(c, p, radius, out)
		}
	}
}

// QueryRay returns every live entry whose rect is hit by the ray from
// origin in direction dir, using the standard slab test.
func (t *Tree[T]) QueryRay(origin, dir stagewright.Vec2) []Entry[T] {
	var out []Entry[T]
	queryRay(t.root, origin, dir, &out)
	return out
}

func queryRay[T comparable](n *node[T], origin, dir stagewright.Vec2, out *[]Entry[T]) {
	if !stagewright.RayAABBIntersect(origin, dir, n.bounds) {
		return
	}
	for _, e := range n.entries {
		if stagewright.RayAABBIntersect(origin, dir, e.Rect) {
			*out = append(*out, e)
		}
	}
	if n.children != nil {
		for _, c := range n.children {
			queryRay(c, origin, dir, out)
		}
	}
}
