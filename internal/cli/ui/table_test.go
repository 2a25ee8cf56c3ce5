package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTable(t *testing.T, headers []string, rows [][]string) []string {
	t.Helper()

	var buf bytes.Buffer
	table := NewTable(&buf, headers...)
	table.DisableColor()
	for _, row := range rows {
		table.AddRow(row...)
	}
	table.Render()

	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestTableRender(t *testing.T) {
	lines := renderTable(t,
		[]string{"SCHEMA", "PROPERTIES"},
		[][]string{
			{"Address", "2"},
			{"Order", "3"},
		},
	)

	require.Len(t, lines, 4)
	assert.Equal(t, "SCHEMA   PROPERTIES", lines[0])
	assert.Equal(t, strings.Repeat("─", 7)+"  "+strings.Repeat("─", 10), lines[1])
	assert.Equal(t, "Address  2", lines[2])
	assert.Equal(t, "Order    3", lines[3])
}

func TestTableColumnsWidenToFitRows(t *testing.T) {
	lines := renderTable(t,
		[]string{"NAME"},
		[][]string{{"a-much-longer-value"}},
	)

	assert.Equal(t, "NAME"+strings.Repeat(" ", 15), lines[0])
	assert.Equal(t, "a-much-longer-value", lines[1])
}

func TestTableShortRowsLeaveCellsEmpty(t *testing.T) {
	lines := renderTable(t,
		[]string{"A", "B", "C"},
		[][]string{{"x"}},
	)

	// Trailing empty cells are trimmed away.
	assert.Equal(t, "x", lines[2])
}

func TestTableNoHeadersRendersNothing(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf)
	table.AddRow("orphan")
	table.Render()

	assert.Empty(t, buf.String())
}
