// Package classifier derives the four-qualifier taxonomy of a JSON document
// from its analysis.
package classifier

import (
	"unicode"
	"unicode/utf8"

	"github.com/mcncl/jsontaxonomy/internal/analyzer"
	"github.com/mcncl/jsontaxonomy/internal/models"
)

// Size tiers.
const (
	TierSmall  = "tier 1"
	TierMedium = "tier 2"
	TierLarge  = "tier 3"
)

// Content types.
const (
	ContentTextual    = "textual"
	ContentNumeric    = "numeric"
	ContentBoolean    = "boolean"
	ContentStructural = "structural"
)

// Redundancy and nesting qualifiers.
const (
	Redundant    = "redundant"
	NonRedundant = "non-redundant"
	Nested       = "nested"
	Flat         = "flat"
)

const (
	smallSizeLimit  = 100
	mediumSizeLimit = 1000

	// redundancyThreshold is the duplicate percentage at which a document
	// is redundant.
	redundancyThreshold = 25

	// structuralNestingHeight is the height at which a document without
	// scalar content is nested.
	structuralNestingHeight = 5

	// nestingThreshold bounds height times the index of the heaviest level.
	nestingThreshold = 10
)

// Taxonomy analyzes v once and classifies it.
func Taxonomy(v models.Value) models.Taxonomy {
	return Classify(analyzer.Analyze(v))
}

// Classify applies the size, content, redundancy and nesting rules to a, in
// that order.
func Classify(a models.Analysis) models.Taxonomy {
	w := contentWeights(a)
	return models.Taxonomy{
		SizeTier(a),
		ContentType(w),
		Redundancy(a),
		Nesting(a, w),
	}
}

// Weights are count times size of the three scalar categories.
type Weights struct {
	Textual int
	Numeric int
	Boolean int
}

// Empty reports whether the document has no weighted scalar content.
func (w Weights) Empty() bool {
	return w.Textual == 0 && w.Numeric == 0 && w.Boolean == 0
}

func contentWeights(a models.Analysis) Weights {
	return Weights{
		Textual: a.Values.Textual.Count * a.Values.Textual.Size,
		Numeric: a.Values.Numeric.Count * a.Values.Numeric.Size,
		Boolean: a.Values.Boolean.Count * a.Values.Boolean.Size,
	}
}

// SizeTier buckets the canonical byte size.
func SizeTier(a models.Analysis) string {
	switch {
	case a.Size < smallSizeLimit:
		return TierSmall
	case a.Size < mediumSizeLimit:
		return TierMedium
	default:
		return TierLarge
	}
}

// ContentType picks the heaviest scalar category. Ties go to textual, then
// numeric, then boolean.
func ContentType(w Weights) string {
	switch {
	case w.Empty():
		return ContentStructural
	case w.Textual >= w.Numeric && w.Textual >= w.Boolean:
		return ContentTextual
	case w.Numeric >= w.Boolean:
		return ContentNumeric
	default:
		return ContentBoolean
	}
}

// Redundancy compares the share of duplicate nodes against the threshold.
func Redundancy(a models.Analysis) string {
	if Percentage(float64(a.Count), float64(a.Duplicates())) >= redundancyThreshold {
		return Redundant
	}
	return NonRedundant
}

// Nesting classifies the shape of the document from its height and the
// depth of its heaviest level.
func Nesting(a models.Analysis, w Weights) string {
	if w.Empty() && a.Height >= structuralNestingHeight {
		return Nested
	}
	if a.Height*LargestLevel(a) >= nestingThreshold {
		return Nested
	}
	return Flat
}

// LargestLevel returns the depth, from 1 to the height, whose sampled size
// is greatest, preferring the shallowest on ties. Scalar documents have no
// such level and yield 0.
func LargestLevel(a models.Analysis) int {
	largest := 0
	for depth := 1; depth < len(a.Levels); depth++ {
		if largest == 0 || a.Levels[depth].Size > a.Levels[largest].Size {
			largest = depth
		}
	}
	return largest
}

// Percentage returns local as a percentage of total, or 0 when total is 0.
func Percentage(total, local float64) float64 {
	if total == 0 {
		return 0
	}
	return local * 100 / total
}

// TitleCase upper-cases the first letter of a qualifier.
func TitleCase(qualifier string) string {
	r, size := utf8.DecodeRuneInString(qualifier)
	if r == utf8.RuneError {
		return qualifier
	}
	return string(unicode.ToUpper(r)) + qualifier[size:]
}
