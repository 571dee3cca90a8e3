package analyzer

import (
	"github.com/mcncl/jsontaxonomy/internal/models"
)

// Analyze computes the statistics record of v. It never mutates v and
// returns a fresh record on every call.
func Analyze(v models.Value) models.Analysis {
	byteSize := ByteSize(v)
	values := DeepValues(v)
	height := Height(v)

	var (
		textual    []string
		numeric    []float64
		boolean    []models.Value
		structural []models.Value
	)
	result := models.Analysis{
		Size:   byteSize.Total(),
		Count:  len(values),
		Height: height,
	}

	for _, value := range values {
		switch node := value.(type) {
		case models.String:
			textual = append(textual, string(node))
			result.Values.Textual.Size += ByteSize(node).Scalar
		case models.Number:
			numeric = append(numeric, float64(node))
			result.Values.Numeric.Size += ByteSize(node).Scalar
		case models.Bool, models.Null:
			boolean = append(boolean, node)
			result.Values.Boolean.Size += ByteSize(node).Scalar
		case models.Array, *models.Object:
			structural = append(structural, node)
		}
	}

	result.Values.Textual.Count = len(textual)
	result.Values.Textual.Duplicates = len(textual) - distinct(textual)
	result.Values.Numeric.Count = len(numeric)
	result.Values.Numeric.Duplicates = len(numeric) - distinct(numeric)
	result.Values.Boolean.Count = len(boolean)
	result.Values.Boolean.Duplicates = len(boolean) - distinct(boolean)
	result.Values.Structural.Count = len(structural)
	result.Values.Structural.Duplicates = len(structural) - distinctStructural(values, fingerprints(v))
	result.Values.Structural.Size = byteSize.Structural

	result.Levels = make([]models.LevelStats, height+1)
	for depth := range result.Levels {
		elements := Level(v, depth)
		level := models.LevelStats{Count: len(elements)}
		for _, element := range elements {
			level.Size += ByteSize(element).Total()
		}
		result.Levels[depth] = level
	}

	return result
}
