// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/bornomala/internal/bangla"
)

// LessonRow is one line of the per-lesson table.
type LessonRow struct {
	Lesson    int
	Title     string
	Level     int
	Completed bool
	Unlocked  bool
	WPM       int
	Accuracy  int
	Date      string
	HasResult bool
}

// Status returns a short label for the row state.
func (r LessonRow) Status() string {
	switch {
	case r.Completed:
		return "done"
	case r.Unlocked:
		return "open"
	default:
		return "locked"
	}
}

// RenderLessonTable prints lessons with their level, status and latest result.
func RenderLessonTable(w io.Writer, rows []LessonRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No lessons.")
		return err
	}
	headers := []string{"Lesson", "Title", "Level", "Status", "WPM", "Accuracy", "Date"}
	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		wpm, acc, date := "-", "-", "-"
		if r.HasResult {
			wpm = fmt.Sprintf("%d", r.WPM)
			acc = fmt.Sprintf("%d%%", r.Accuracy)
			date = r.Date
		}
		body = append(body, []string{
			"পাঠ " + bangla.Number(r.Lesson+1),
			r.Title,
			fmt.Sprintf("%d", r.Level+1),
			r.Status(),
			wpm,
			acc,
			date,
		})
	}
	for _, line := range formatTable(headers, body, map[int]bool{2: true, 4: true, 5: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
