package util

import (
	"fmt"
	"io"
	"strings"
)

/*
Minimal table printer for CLI output, in the style of psql's aligned format:

	|  Name  |  Shape  |
	|--------|---------|
	| Tree   | struct  |
*/

////////////////////////////////////////////////////////////////////////////////

func computeCellWidths(headers []string, data [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header) + 4 // pad two spaces each side
	}
	for _, row := range data {
		for i, column := range row {
			if i >= len(widths) {
				break
			}
			if width := len(column) + 2; widths[i] < width {
				widths[i] = width
			}
		}
	}
	// size the cells so the headers can be center-spaced
	for i, header := range headers {
		if (widths[i]-len(header))%2 == 1 {
			widths[i]++
		}
	}
	return widths
}

// PrintTable writes headers and rows as an aligned text table.
func PrintTable(w io.Writer, headers []string, data [][]string) {
	widths := computeCellWidths(headers, data)

	fmt.Fprintf(w, "|")
	for i, header := range headers {
		padding := (widths[i] - len(header)) / 2
		fmt.Fprintf(w, "%s%s%s|", strings.Repeat(" ", padding), header, strings.Repeat(" ", padding))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "|")
	for _, width := range widths {
		fmt.Fprint(w, strings.Repeat("-", width))
		fmt.Fprintf(w, "|")
	}
	fmt.Fprintln(w)

	for _, row := range data {
		fmt.Fprint(w, "|")
		for i, col := range row {
			fmt.Fprintf(w, " %s%s|", col, strings.Repeat(" ", widths[i]-len(col)-1))
		}
		fmt.Fprintln(w)
	}
}
