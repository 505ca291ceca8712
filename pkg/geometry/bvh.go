package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVHNode is a node of a binary bounding volume hierarchy. Each node owns exactly two
// children, which may alias the same entity when built from a single entity.
type BVHNode struct {
	unsampled
	Left, Right core.Hittable
	box         core.AABB
}

// NewBVH builds a hierarchy over the members of a list. The split axis is chosen at random
// at every level. Panics if the list is empty.
func NewBVH(list *List, random *rand.Rand) *BVHNode {
	if list == nil || len(list.Objects) == 0 {
		panic("geometry: cannot build a BVH from an empty entity set")
	}

	// Copy so that sorting does not reorder the caller's list
	objects := make([]core.Hittable, len(list.Objects))
	copy(objects, list.Objects)

	return buildBVH(objects, random)
}

// buildBVH sorts by box minimum along a random axis and splits at the midpoint
func buildBVH(objects []core.Hittable, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
	})

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
	case 2:
		node.Left, node.Right = objects[0], objects[1]
	default:
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], random)
		node.Right = buildBVH(objects[mid:], random)
	}
	node.box = node.Left.BoundingBox().Union(node.Right.BoundingBox())
	return node
}

// Hit tests the node box, then both children, returning the nearer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, random)
	if hitLeft {
		// Only the segment in front of the left hit can improve on it
		tMax = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, random); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached union of both children
func (n *BVHNode) BoundingBox() core.AABB {
	return n.box
}

// BVHStats summarises the shape of a hierarchy
type BVHStats struct {
	Nodes    int // internal nodes
	Leaves   int // distinct non-node children
	MaxDepth int
}

// Stats walks the hierarchy and counts nodes, leaves and depth
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(&stats, 1)
	return stats
}

func (n *BVHNode) collectStats(stats *BVHStats, depth int) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	children := []core.Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(stats, depth+1)
		} else {
			stats.Leaves++
		}
	}
}
