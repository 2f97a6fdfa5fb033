package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVHNode is a node of a binary Bounding Volume Hierarchy.
// Children are either further nodes or the primitives themselves; a node over a single
// object uses it as both children.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	bbox  core.AABB
}

// NewBVH builds a hierarchy over objects. The caller's slice is not reordered.
// An empty input yields a node that is never hit.
func NewBVH(objects []core.Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	// Sorting happens in place, so work on a copy
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVH(list.Objects)
}

// buildBVH splits objects at the median along the longest axis of their bounds
func buildBVH(objects []core.Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = core.NewAABBUnion(bbox, object.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}

	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
	case 2:
		node.Left, node.Right = objects[0], objects[1]
	default:
		sortByAxis(objects, bbox.LongestAxis())
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}

	return node
}

// sortByAxis orders objects by the minimum of their bounds along axis
func sortByAxis(objects []core.Hittable, axis int) {
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min <
			objects[j].BoundingBox().AxisInterval(axis).Min
	})
}

// Hit tests the ray against both subtrees, narrowing the right search to the left hit
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord, sampler core.Sampler) bool {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return false
	}

	hitLeft := n.Left.Hit(ray, rayT, rec, sampler)

	rightMax := rayT.Max
	if hitLeft {
		rightMax = rec.T
	}
	hitRight := n.Right.Hit(ray, core.NewInterval(rayT.Min, rightMax), rec, sampler)

	return hitLeft || hitRight
}

// BoundingBox returns the bounds of everything below this node
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // Interior nodes
	Leaves   int // Child slots holding primitives
	MaxDepth int // Deepest primitive, counting the root as depth 0
}

// Stats walks the hierarchy and returns its statistics
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	if n.Left == nil {
		return stats
	}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++

	for _, child := range []core.Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
			continue
		}
		stats.Leaves++
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
