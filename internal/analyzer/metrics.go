package analyzer

import (
	"github.com/mcncl/jsontaxonomy/internal/models"
)

// ByteSize decomposes the canonical encoded size of v into scalar and
// structural bytes. Scalar + Structural always equals len(models.Marshal(v)).
func ByteSize(v models.Value) models.ByteSize {
	switch node := v.(type) {
	case models.Array:
		// Brackets plus n-1 commas; an empty array still costs its brackets.
		size := models.ByteSize{Structural: 2 + max(len(node), 1) - 1}
		for _, child := range node {
			size = size.Add(ByteSize(child))
		}
		return size
	case *models.Object:
		// One colon per key plus the encoded key list, whose brackets,
		// quotes and commas match the object's own.
		size := models.ByteSize{Structural: node.Len() + models.KeyListLen(node.Keys())}
		for _, m := range node.Members {
			size = size.Add(ByteSize(m.Value))
		}
		return size
	default:
		return models.ByteSize{Scalar: len(models.AppendScalar(nil, v))}
	}
}

// DeepValues flattens v in pre-order: the node itself, then each child's
// flattening in traversal order.
func DeepValues(v models.Value) []models.Value {
	return appendDeepValues(nil, v)
}

func appendDeepValues(dst []models.Value, v models.Value) []models.Value {
	dst = append(dst, v)
	for _, child := range models.Children(v) {
		dst = appendDeepValues(dst, child)
	}
	return dst
}

// Height is 0 for scalars and one more than the tallest child for
// containers. Empty containers have height 1.
func Height(v models.Value) int {
	if !models.IsContainer(v) {
		return 0
	}
	tallest := 0
	for _, child := range models.Children(v) {
		tallest = max(tallest, Height(child))
	}
	return 1 + tallest
}

// Level returns the scalars found exactly n levels below v. Depth 0 is v
// itself whatever its kind; containers are never returned for n >= 1.
func Level(v models.Value, n int) []models.Value {
	if n == 0 {
		return []models.Value{v}
	}
	if !models.IsContainer(v) {
		return []models.Value{}
	}

	result := []models.Value{}
	for _, child := range models.Children(v) {
		if n == 1 {
			if !models.IsContainer(child) {
				result = append(result, child)
			}
			continue
		}
		result = append(result, Level(child, n-1)...)
	}
	return result
}
