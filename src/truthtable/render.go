package truthtable

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

const OutputColumn = "Output"

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// Formats lists the output formats Render understands.
var Formats = []string{FormatText, FormatMarkdown, FormatCSV, FormatJSON}

type RenderOptions struct {
	Format string
	// Color paints rows green or red depending on the result, text format only
	Color bool
}

// Render writes the table to w in the requested format.
func Render(w io.Writer, t *Table, opts RenderOptions) error {
	switch opts.Format {
	case FormatText, "":
		renderText(w, t, opts.Color)
		return nil
	case FormatMarkdown:
		renderMarkdown(w, t)
		return nil
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatJSON:
		return writeJSON(w, t)
	default:
		return fmt.Errorf("unknown output format '%s', expected one of %v", opts.Format, Formats)
	}
}

// IsValidFormat reports whether Render accepts the format.
func IsValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}

func (t *Table) header() []string {
	return append(slices.Clone(t.Variables), OutputColumn)
}

func (t *Table) record(row Row) []string {
	record := lo.Map(row.Values, func(v bool, _ int) string { return bit(v) })
	return append(record, bit(row.Result))
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func newPrettyTable(w io.Writer, t *Table) table.Writer {
	pt := table.NewWriter()
	pt.SetOutputMirror(w)

	pt.AppendHeader(lo.Map(t.header(), func(h string, _ int) any { return h }))
	for _, row := range t.Rows {
		pt.AppendRow(lo.Map(t.record(row), func(v string, _ int) any { return v }))
	}

	configs := make([]table.ColumnConfig, len(t.Variables)+1)
	for i := range configs {
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignCenter,
			AlignHeader: text.AlignCenter,
		}
	}
	pt.SetColumnConfigs(configs)

	pt.SetStyle(table.StyleLight)
	// same header as the csv export
	pt.Style().Format.Header = text.FormatDefault
	return pt
}

func renderText(w io.Writer, t *Table, color bool) {
	pt := newPrettyTable(w, t)
	if t.Expression != "" {
		pt.SetTitle(t.Expression)
	}

	if color {
		output := len(t.Variables)
		pt.SetRowPainter(table.RowPainter(func(row table.Row) text.Colors {
			if len(row) > output && row[output] == "1" {
				return text.Colors{text.FgGreen}
			}
			return text.Colors{text.FgRed}
		}))
	}

	pt.Render()
}

func renderMarkdown(w io.Writer, t *Table) {
	newPrettyTable(w, t).RenderMarkdown()
}

// WriteCSV writes a header of the variable names followed by "Output", then
// one record per row with values written as 0 or 1.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := writer.Write(t.record(row)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

type jsonTable struct {
	Expression string    `json:"expression,omitempty"`
	Variables  []string  `json:"variables"`
	Rows       []jsonRow `json:"rows"`
}

type jsonRow struct {
	Inputs map[string]bool `json:"inputs"`
	Output bool            `json:"output"`
}

func writeJSON(w io.Writer, t *Table) error {
	out := jsonTable{
		Expression: t.Expression,
		Variables:  t.Variables,
		Rows:       make([]jsonRow, len(t.Rows)),
	}
	if out.Variables == nil {
		out.Variables = []string{}
	}
	for i, row := range t.Rows {
		out.Rows[i] = jsonRow{Inputs: t.Assignment(i), Output: row.Result}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
