package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// table renders aligned columns with a highlighted header row.
type table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

func newTable(w io.Writer, headers ...string) *table {
	return &table{writer: w, headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render() {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	for i, h := range t.headers {
		bold.Fprint(t.writer, pad(h, widths[i], i == len(t.headers)-1))
		if i < len(t.headers)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			fmt.Fprint(t.writer, pad(cell, widths[i], i == len(row)-1))
			if i < len(row)-1 {
				fmt.Fprint(t.writer, "  ")
			}
		}
		fmt.Fprintln(t.writer)
	}
}

// keyValues renders "key  value" lines with aligned values.
type keyValues struct {
	writer io.Writer
	keys   []string
	values []string
}

func newKeyValues(w io.Writer) *keyValues {
	return &keyValues{writer: w}
}

func (kv *keyValues) add(key string, value any) {
	kv.keys = append(kv.keys, key)
	kv.values = append(kv.values, fmt.Sprint(value))
}

func (kv *keyValues) render() {
	width := 0
	for _, k := range kv.keys {
		width = max(width, utf8.RuneCountInString(k))
	}
	key := color.New(color.Bold)
	for i, k := range kv.keys {
		key.Fprint(kv.writer, pad(k, width, false))
		fmt.Fprintf(kv.writer, "  %s\n", kv.values[i])
	}
}

// pad right-pads s to width runes. The last column is not padded.
func pad(s string, width int, last bool) string {
	n := utf8.RuneCountInString(s)
	if last || n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
