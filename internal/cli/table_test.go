package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/colournodes/internal/colour"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "VALUE"})
	table.AddRow([]string{"a", "1"})
	table.AddRow([]string{"long", "22"})

	want := "NAME  VALUE\n" +
		"----  -----\n" +
		"a     1\n" +
		"long  22\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableAddRowFitsHeaders(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{"x"})
	table.AddRow([]string{"1", "2", "extra"})

	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[0][1] != "" {
		t.Errorf("padded cell = %q, want empty", table.rows[0][1])
	}
	if strings.Contains(table.Render(), "extra") {
		t.Error("Render() should drop cells beyond the header count")
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}

	got := NewTable([]string{"Column1", "Column2"}).Render()
	if want := "Column1  Column2\n-------  -------\n"; got != want {
		t.Errorf("Render() with no rows = %q, want %q", got, want)
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	swatch := colour.WithSwatch(colour.RGB{R: 255}, "#ff0000")

	table := NewTable([]string{"HEX", "NAME"})
	table.AddRow([]string{swatch, "red"})
	lines := strings.Split(table.Render(), "\n")

	if got, want := visibleLen(lines[2]), visibleLen(lines[0])-len("NAME")+len("red"); got != want {
		t.Errorf("swatch row visible width = %d, want %d\n%q", got, want, lines[2])
	}
}

func TestTableWrapsColumns(t *testing.T) {
	table := NewTable([]string{"ID", "DESCRIPTION"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"1", "parse a block of hex colours"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("Render() produced %d lines, want 6:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if strings.TrimSpace(lines[3]) != "block of" {
		t.Errorf("continuation line = %q, want %q", lines[3], "block of")
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"plain", 5},
		{colour.Swatch(colour.RGB{R: 1, G: 2, B: 3}, 4), 4},
		{"\033[1mbold\033[0m", 4},
	}
	for _, tt := range tests {
		if got := visibleLen(tt.in); got != tt.want {
			t.Errorf("visibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"no limit at all", 0, []string{"no limit at all"}},
		{"parse a block of hex colours", 10, []string{"parse a", "block of", "hex", "colours"}},
		{"abcdefgh ij", 3, []string{"abc", "def", "gh", "ij"}},
	}
	for _, tt := range tests {
		got := wrapText(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
	}
	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}
