package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/mcncl/jsontaxonomy/internal/classifier"
	"github.com/mcncl/jsontaxonomy/internal/config"
	apperrors "github.com/mcncl/jsontaxonomy/internal/errors"
	"github.com/mcncl/jsontaxonomy/internal/models"
	"gopkg.in/yaml.v3"
)

// Report is everything the formatter can print about one document.
type Report struct {
	Source   string          `json:"source,omitempty" yaml:"source,omitempty"`
	Taxonomy models.Taxonomy `json:"taxonomy" yaml:"taxonomy"`
	Analysis models.Analysis `json:"-" yaml:"-"`
}

// structuredReport is the shape of JSON and YAML output.
type structuredReport struct {
	Source   string           `json:"source,omitempty" yaml:"source,omitempty"`
	Taxonomy models.Taxonomy  `json:"taxonomy" yaml:"taxonomy"`
	Analysis *models.Analysis `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

// Formatter renders reports according to the output configuration
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter instance
func NewFormatter(cfg *config.Config) *Formatter {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Formatter{config: cfg}
}

// Write renders report to w in the configured format
func (f *Formatter) Write(w io.Writer, report Report) error {
	switch f.config.Output.Format {
	case config.FormatText:
		return f.writeText(w, report)
	case config.FormatJSON:
		return f.writeJSON(w, report)
	case config.FormatYAML:
		return f.writeYAML(w, report)
	case config.FormatMarkdown:
		return f.writeMarkdown(w, report)
	default:
		return fmt.Errorf("%w '%s'", apperrors.ErrUnknownFormat, f.config.Output.Format)
	}
}

// Qualifiers joins the taxonomy into a single line, title-casing each
// qualifier when configured to.
func (f *Formatter) Qualifiers(taxonomy models.Taxonomy) string {
	parts := make([]string, len(taxonomy))
	for i, qualifier := range taxonomy {
		if f.config.Output.TitleCase {
			qualifier = classifier.TitleCase(qualifier)
		}
		parts[i] = qualifier
	}
	return strings.Join(parts, f.config.Output.Separator)
}

func (f *Formatter) writeText(w io.Writer, report Report) error {
	if _, err := fmt.Fprintln(w, f.Qualifiers(report.Taxonomy)); err != nil {
		return err
	}
	if !f.config.Output.IncludeAnalysis {
		return nil
	}

	a := report.Analysis
	var b strings.Builder
	fmt.Fprintf(&b, "\nSize:       %d bytes\n", a.Size)
	fmt.Fprintf(&b, "Values:     %d\n", a.Count)
	fmt.Fprintf(&b, "Height:     %d\n", a.Height)
	fmt.Fprintf(&b, "Duplicates: %d\n", a.Duplicates())
	b.WriteString("\nCategory    Values  Bytes  Duplicates\n")
	for _, row := range categoryRows(a) {
		fmt.Fprintf(&b, "%-10s  %6d  %5d  %10d\n", row.name, row.stats.Count, row.stats.Size, row.stats.Duplicates)
	}
	b.WriteString("\nLevel  Values  Bytes\n")
	for depth, level := range a.Levels {
		fmt.Fprintf(&b, "%5d  %6d  %5d\n", depth, level.Count, level.Size)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *Formatter) structured(report Report) structuredReport {
	out := structuredReport{Source: report.Source, Taxonomy: report.Taxonomy}
	if f.config.Output.IncludeAnalysis {
		analysis := report.Analysis
		out.Analysis = &analysis
	}
	return out
}

func (f *Formatter) writeJSON(w io.Writer, report Report) error {
	data, err := gojson.MarshalIndent(f.structured(report), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func (f *Formatter) writeYAML(w io.Writer, report Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(f.structured(report)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

type categoryRow struct {
	name  string
	stats models.CategoryStats
}

func categoryRows(a models.Analysis) []categoryRow {
	return []categoryRow{
		{"Textual", a.Values.Textual},
		{"Numeric", a.Values.Numeric},
		{"Boolean", a.Values.Boolean},
		{"Structural", a.Values.Structural},
	}
}

// FormatPercentage renders local/total with two decimals, dropping a
// trailing ".00".
func FormatPercentage(total, local int) string {
	value := classifier.Percentage(float64(total), float64(local))
	return strings.TrimSuffix(strconv.FormatFloat(value, 'f', 2, 64), ".00") + "%"
}
