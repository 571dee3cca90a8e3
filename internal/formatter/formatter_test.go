package formatter

import (
	"bytes"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/mcncl/jsontaxonomy/internal/analyzer"
	"github.com/mcncl/jsontaxonomy/internal/classifier"
	"github.com/mcncl/jsontaxonomy/internal/config"
	apperrors "github.com/mcncl/jsontaxonomy/internal/errors"
	"github.com/mcncl/jsontaxonomy/internal/models"
	"github.com/mcncl/jsontaxonomy/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const surveyJSON = `{
	"tags": [],
	"tz": -25200,
	"days": [1, 1, 2, 1],
	"coord": [-90.0715, 29.9510],
	"data": [
		{"name": "ox03", "staff": true},
		{"name": null, "staff": false, "extra": {"info": ""}},
		{"name": "ox03", "staff": true},
		{}
	]
}`

func surveyReport(t *testing.T) Report {
	t.Helper()
	value, err := parser.ParseString(surveyJSON)
	require.NoError(t, err)
	analysis := analyzer.Analyze(value)
	return Report{
		Source:   "survey.json",
		Taxonomy: classifier.Classify(analysis),
		Analysis: analysis,
	}
}

func newTestConfig(format string, includeAnalysis bool) *config.Config {
	cfg := config.NewConfig()
	cfg.Output.Format = format
	cfg.Output.IncludeAnalysis = includeAnalysis
	return cfg
}

func render(t *testing.T, cfg *config.Config, report Report) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(cfg).Write(&buf, report))
	return buf.String()
}

func TestNewFormatter_NilConfigUsesDefaults(t *testing.T) {
	output := render(t, nil, surveyReport(t))
	assert.Equal(t, "Tier 2, Numeric, Non-redundant, Nested\n", output)
}

func TestQualifiers(t *testing.T) {
	taxonomy := models.Taxonomy{"tier 1", "structural", "redundant", "flat"}

	cfg := config.NewConfig()
	assert.Equal(t, "Tier 1, Structural, Redundant, Flat", NewFormatter(cfg).Qualifiers(taxonomy))

	cfg.Output.TitleCase = false
	cfg.Output.Separator = " | "
	assert.Equal(t, "tier 1 | structural | redundant | flat", NewFormatter(cfg).Qualifiers(taxonomy))
}

func TestWrite_Text(t *testing.T) {
	report := surveyReport(t)

	t.Run("qualifiers only", func(t *testing.T) {
		output := render(t, newTestConfig(config.FormatText, false), report)
		assert.Equal(t, "Tier 2, Numeric, Non-redundant, Nested\n", output)
	})

	t.Run("with analysis", func(t *testing.T) {
		output := render(t, newTestConfig(config.FormatText, true), report)
		lines := strings.Split(output, "\n")

		assert.Equal(t, "Tier 2, Numeric, Non-redundant, Nested", lines[0])
		assert.Contains(t, output, "Size:       184 bytes\n")
		assert.Contains(t, output, "Values:     24\n")
		assert.Contains(t, output, "Height:     4\n")
		assert.Contains(t, output, "Duplicates: 5\n")
		assert.Contains(t, output, "Numeric          7     24           2\n")
		assert.Contains(t, output, "Structural      10    129           1\n")
		assert.Contains(t, output, "    3       6     29\n")
	})
}

func TestWrite_JSON(t *testing.T) {
	report := surveyReport(t)

	t.Run("taxonomy only", func(t *testing.T) {
		output := render(t, newTestConfig(config.FormatJSON, false), report)

		var decoded map[string]any
		require.NoError(t, gojson.Unmarshal([]byte(output), &decoded))
		assert.Equal(t, map[string]any{
			"source":   "survey.json",
			"taxonomy": []any{"tier 2", "numeric", "non-redundant", "nested"},
		}, decoded)
		assert.True(t, strings.HasSuffix(output, "}\n"))
	})

	t.Run("with analysis", func(t *testing.T) {
		output := render(t, newTestConfig(config.FormatJSON, true), report)

		var decoded structuredReport
		require.NoError(t, gojson.Unmarshal([]byte(output), &decoded))
		require.NotNil(t, decoded.Analysis)
		assert.Equal(t, report.Analysis, *decoded.Analysis)
		assert.Equal(t, report.Taxonomy, decoded.Taxonomy)
	})
}

func TestWrite_YAML(t *testing.T) {
	report := surveyReport(t)

	t.Run("taxonomy only", func(t *testing.T) {
		output := render(t, newTestConfig(config.FormatYAML, false), report)

		assert.Contains(t, output, "source: survey.json\n")
		assert.Contains(t, output, "- tier 2\n")
		assert.NotContains(t, output, "analysis:")
	})

	t.Run("with analysis", func(t *testing.T) {
		output := render(t, newTestConfig(config.FormatYAML, true), report)

		var decoded structuredReport
		require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
		require.NotNil(t, decoded.Analysis)
		assert.Equal(t, report.Analysis, *decoded.Analysis)
		assert.Equal(t, report.Taxonomy, decoded.Taxonomy)
	})
}

func TestWrite_Markdown(t *testing.T) {
	report := surveyReport(t)
	output := render(t, newTestConfig(config.FormatMarkdown, false), report)

	assert.Contains(t, output, "# JSON Taxonomy Report")
	assert.Contains(t, output, "**Tier 2, Numeric, Non-redundant, Nested**")
	assert.Contains(t, output, "## Overview")
	assert.Contains(t, output, "`survey.json`")
	assert.Contains(t, output, "## Content Types")
	assert.Contains(t, output, "12.50%")
	assert.Contains(t, output, "## Charts")
	assert.Contains(t, output, "```mermaid")
	assert.Contains(t, output, "Number of Values by Content Type")
	assert.Contains(t, output, "Byte-size of Values by Content Type")
	assert.Contains(t, output, "## Levels")
}

func TestWrite_MarkdownSections(t *testing.T) {
	report := surveyReport(t)
	cfg := newTestConfig(config.FormatMarkdown, false)
	cfg.Report.Title = "Survey"
	cfg.Report.Charts = false
	cfg.Report.Levels = false

	output := render(t, cfg, report)

	assert.True(t, strings.HasPrefix(output, "# Survey"))
	assert.Contains(t, output, "## Content Types")
	assert.NotContains(t, output, "```mermaid")
	assert.NotContains(t, output, "## Levels")
}

func TestWrite_UnknownFormat(t *testing.T) {
	cfg := newTestConfig("html", false)

	var buf bytes.Buffer
	err := NewFormatter(cfg).Write(&buf, surveyReport(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownFormat)
	assert.Empty(t, buf.String())
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		total    int
		local    int
		expected string
	}{
		{0, 0, "0%"},
		{4, 1, "25%"},
		{3, 3, "100%"},
		{3, 1, "33.33%"},
		{24, 3, "12.50%"},
		{184, 129, "70.11%"},
		{7, 0, "0%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatPercentage(tt.total, tt.local), "%d of %d", tt.local, tt.total)
	}
}
