package truthtable_test

import (
	"bytes"
	"encoding/json"
	"testing"

	helpers_test "github.com/eriklarko/logic-simulator/src/helpers"
	"github.com/eriklarko/logic-simulator/src/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, expression string) *truthtable.Table {
	t.Helper()

	table, err := truthtable.FromExpression(expression)
	require.NoError(t, err)
	return table
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := truthtable.WriteCSV(&buf, mustTable(t, "A AND B"))
	require.NoError(t, err)

	assert.Equal(t, "A,B,Output\n0,0,0\n0,1,0\n1,0,0\n1,1,1\n", buf.String())
}

func TestWriteCSVFile(t *testing.T) {
	path := helpers_test.TempPath(t, "table.csv")

	written, err := truthtable.WriteCSVFile(path, mustTable(t, "NOT A"))
	require.NoError(t, err)

	assert.Equal(t, path, written)
	assert.Equal(t, "A,Output\n0,1\n1,0\n", helpers_test.ReadFile(t, path))
}

func TestWriteCSVFileInMissingDirectory(t *testing.T) {
	path := helpers_test.TempPath(t, "missing/table.csv")

	_, err := truthtable.WriteCSVFile(path, mustTable(t, "NOT A"))
	assert.ErrorContains(t, err, "failed to create file")
}

func TestRenderFormats(t *testing.T) {
	table := mustTable(t, "A XOR B")

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		err := truthtable.Render(&buf, table, truthtable.RenderOptions{Format: truthtable.FormatText})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "A XOR B")
		assert.Contains(t, out, "Output")
		assert.NotContains(t, out, "OUTPUT")
		assert.NotContains(t, out, "\x1b[", "colors are off unless asked for")
	})

	t.Run("empty format defaults to text", func(t *testing.T) {
		var withDefault, withText bytes.Buffer
		require.NoError(t, truthtable.Render(&withDefault, table, truthtable.RenderOptions{}))
		require.NoError(t, truthtable.Render(&withText, table, truthtable.RenderOptions{Format: truthtable.FormatText}))

		assert.Equal(t, withText.String(), withDefault.String())
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		err := truthtable.Render(&buf, table, truthtable.RenderOptions{Format: truthtable.FormatMarkdown})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "| A | B | Output |")
		assert.Contains(t, out, "| 0 | 1 | 1 |")
		assert.Contains(t, out, "| 1 | 1 | 0 |")
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		err := truthtable.Render(&buf, table, truthtable.RenderOptions{Format: truthtable.FormatCSV})
		require.NoError(t, err)

		assert.Equal(t, "A,B,Output\n0,0,0\n0,1,1\n1,0,1\n1,1,0\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		err := truthtable.Render(&buf, table, truthtable.RenderOptions{Format: truthtable.FormatJSON})
		require.NoError(t, err)

		var decoded struct {
			Expression string   `json:"expression"`
			Variables  []string `json:"variables"`
			Rows       []struct {
				Inputs map[string]bool `json:"inputs"`
				Output bool            `json:"output"`
			} `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

		assert.Equal(t, "A XOR B", decoded.Expression)
		assert.Equal(t, []string{"A", "B"}, decoded.Variables)
		require.Len(t, decoded.Rows, 4)
		assert.Equal(t, map[string]bool{"A": false, "B": true}, decoded.Rows[1].Inputs)
		assert.True(t, decoded.Rows[1].Output)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := truthtable.Render(&buf, table, truthtable.RenderOptions{Format: "xml"})
		assert.ErrorContains(t, err, "unknown output format 'xml'")
	})
}

func TestIsValidFormat(t *testing.T) {
	for _, format := range truthtable.Formats {
		assert.True(t, truthtable.IsValidFormat(format), format)
	}
	assert.False(t, truthtable.IsValidFormat("yaml"))
}
