package formatter

import (
	"io"
	"strconv"

	"github.com/mcncl/jsontaxonomy/internal/models"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// writeMarkdown renders the qualifiers, the overview, the per-category and
// per-level tables and, optionally, pie charts of the category split.
func (f *Formatter) writeMarkdown(w io.Writer, report Report) error {
	md := markdown.NewMarkdown(w)
	a := report.Analysis

	md.H1(f.config.Report.Title)
	md.PlainText("")
	md.PlainTextf("**%s**", f.Qualifiers(report.Taxonomy))
	md.PlainText("")

	f.writeOverview(md, report)
	f.writeCategories(md, a)
	if f.config.Report.Charts && a.Count > 0 {
		f.writeCharts(md, a)
	}
	if f.config.Report.Levels {
		f.writeLevels(md, a)
	}

	return md.Build()
}

func (f *Formatter) writeOverview(md *markdown.Markdown, report Report) {
	a := report.Analysis
	rows := [][]string{}
	if report.Source != "" {
		rows = append(rows, []string{"Document", "`" + report.Source + "`"})
	}
	rows = append(rows,
		[]string{"Byte size", strconv.Itoa(a.Size)},
		[]string{"Values", strconv.Itoa(a.Count)},
		[]string{"Height", strconv.Itoa(a.Height)},
		[]string{"Duplicates", strconv.Itoa(a.Duplicates())},
	)

	md.H2("Overview")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (f *Formatter) writeCategories(md *markdown.Markdown, a models.Analysis) {
	rows := make([][]string, 0, 4)
	for _, row := range categoryRows(a) {
		rows = append(rows, []string{
			row.name,
			FormatPercentage(a.Count, row.stats.Count),
			FormatPercentage(a.Size, row.stats.Size),
			FormatPercentage(a.Count, row.stats.Duplicates),
		})
	}

	md.H2("Content Types")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Type", "Values", "Byte size", "Duplicates"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (f *Formatter) writeCharts(md *markdown.Markdown, a models.Analysis) {
	counts := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Number of Values by Content Type"),
		piechart.WithShowData(true),
	)
	sizes := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Byte-size of Values by Content Type"),
		piechart.WithShowData(true),
	)
	for _, row := range categoryRows(a) {
		if row.stats.Count > 0 {
			counts.LabelAndIntValue(row.name, uint64(row.stats.Count))
		}
		if row.stats.Size > 0 {
			sizes.LabelAndIntValue(row.name, uint64(row.stats.Size))
		}
	}

	md.H2("Charts")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, counts.String())
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, sizes.String())
	md.PlainText("")
}

func (f *Formatter) writeLevels(md *markdown.Markdown, a models.Analysis) {
	rows := make([][]string, len(a.Levels))
	for depth, level := range a.Levels {
		rows[depth] = []string{
			strconv.Itoa(depth),
			FormatPercentage(a.Count, level.Count),
			FormatPercentage(a.Size, level.Size),
		}
	}

	md.H2("Levels")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Level", "Values", "Byte size"},
		Rows:   rows,
	})
	md.PlainText("")
}
