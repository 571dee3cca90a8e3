package models

// ByteSize splits the canonical encoded size of a value into the bytes
// spent on scalar literals and the bytes spent on container syntax.
type ByteSize struct {
	Scalar     int `json:"scalar" yaml:"scalar"`
	Structural int `json:"structural" yaml:"structural"`
}

// Total is the full canonical byte length.
func (b ByteSize) Total() int {
	return b.Scalar + b.Structural
}

// Add returns the component-wise sum of b and other.
func (b ByteSize) Add(other ByteSize) ByteSize {
	return ByteSize{
		Scalar:     b.Scalar + other.Scalar,
		Structural: b.Structural + other.Structural,
	}
}

// CategoryStats aggregates the nodes of one content category.
type CategoryStats struct {
	Count      int `json:"count" yaml:"count"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	Size       int `json:"size" yaml:"size"`
}

// LevelStats aggregates the values sampled at one depth.
type LevelStats struct {
	Count int `json:"count" yaml:"count"`
	Size  int `json:"size" yaml:"size"`
}

// Values holds per-category statistics. Null is counted as boolean.
type Values struct {
	Textual    CategoryStats `json:"textual" yaml:"textual"`
	Numeric    CategoryStats `json:"numeric" yaml:"numeric"`
	Boolean    CategoryStats `json:"boolean" yaml:"boolean"`
	Structural CategoryStats `json:"structural" yaml:"structural"`
}

// Analysis is the statistics record of a single document.
type Analysis struct {
	Size   int          `json:"size" yaml:"size"`
	Count  int          `json:"count" yaml:"count"`
	Height int          `json:"height" yaml:"height"`
	Levels []LevelStats `json:"levels" yaml:"levels"`
	Values Values       `json:"values" yaml:"values"`
}

// Duplicates sums the duplicates of all four categories.
func (a Analysis) Duplicates() int {
	return a.Values.Textual.Duplicates +
		a.Values.Numeric.Duplicates +
		a.Values.Boolean.Duplicates +
		a.Values.Structural.Duplicates
}

// Taxonomy is the ordered list of qualifiers: size tier, content type,
// redundancy and nesting.
type Taxonomy []string
