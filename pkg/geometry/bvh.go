package geometry

import "github.com/atkvist/go-path-tracer/pkg/core"

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Populated only for leaf nodes
}

// BVH is a Bounding Volume Hierarchy for fast nearest-intersection queries.
// It is immutable once built and safe for concurrent readers.
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: nodes with this many or fewer shapes stay leaves
const leafThreshold = 4

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Copy so the build can partition without touching the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH recursively builds the hierarchy using median splits along the
// longest axis of the node bounds
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis, splitPos, ok := findSplit(boundingBox)
	if !ok {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	leftShapes, rightShapes := partitionShapes(shapes, axis, splitPos)
	if len(leftShapes) == 0 || len(rightShapes) == 0 {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(leftShapes),
		Right:       buildBVH(rightShapes),
	}
}

// findSplit picks the longest axis and its midpoint as the split position
func findSplit(boundingBox AABB) (axis int, splitPos float64, ok bool) {
	axis = boundingBox.LongestAxis()

	var minVal, maxVal float64
	switch axis {
	case 0:
		minVal, maxVal = boundingBox.Min.X, boundingBox.Max.X
	case 1:
		minVal, maxVal = boundingBox.Min.Y, boundingBox.Max.Y
	case 2:
		minVal, maxVal = boundingBox.Min.Z, boundingBox.Max.Z
	}

	if maxVal <= minVal {
		return -1, 0, false
	}
	return axis, (minVal + maxVal) * 0.5, true
}

// partitionShapes splits shapes by bounding-box center along the chosen axis
func partitionShapes(shapes []Shape, axis int, splitPos float64) ([]Shape, []Shape) {
	var leftShapes, rightShapes []Shape

	for _, shape := range shapes {
		center := shape.BoundingBox().Center()
		var centerVal float64
		switch axis {
		case 0:
			centerVal = center.X
		case 1:
			centerVal = center.Y
		case 2:
			centerVal = center.Z
		}

		if centerVal < splitPos {
			leftShapes = append(leftShapes, shape)
		} else {
			rightShapes = append(rightShapes, shape)
		}
	}

	return leftShapes, rightShapes
}

// Intersect finds the nearest intersection along the ray within (tMin, tMax)
func (bvh *BVH) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, Shape, bool) {
	if bvh.Root == nil {
		return Intersection{}, nil, false
	}
	return intersectNode(bvh.Root, ray, tMin, tMax)
}

// intersectNode recursively tests ray intersection against BVH nodes,
// narrowing tMax as closer hits are found
func intersectNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (Intersection, Shape, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return Intersection{}, nil, false
	}

	var nearest Intersection
	var nearestShape Shape
	found := false
	closestSoFar := tMax

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if isect, ok := shape.Intersect(ray, tMin, closestSoFar); ok {
				nearest, nearestShape, found = isect, shape, true
				closestSoFar = isect.T
			}
		}
		return nearest, nearestShape, found
	}

	if node.Left != nil {
		if isect, shape, ok := intersectNode(node.Left, ray, tMin, closestSoFar); ok {
			nearest, nearestShape, found = isect, shape, true
			closestSoFar = isect.T
		}
	}
	if node.Right != nil {
		if isect, shape, ok := intersectNode(node.Right, ray, tMin, closestSoFar); ok {
			nearest, nearestShape, found = isect, shape, true
		}
	}

	return nearest, nearestShape, found
}
