package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Lesson", "Accuracy", "WPM"}
	rows := [][]string{
		{"a", "97%", "12"},
		{"vowels", "8%", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Lesson Accuracy WPM" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a           97%  12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "vowels       8%   3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestRenderLessonTable(t *testing.T) {
	var buf bytes.Buffer
	err := RenderLessonTable(&buf, []LessonRow{
		{Lesson: 0, Title: "vowels", Level: 0, Completed: true, Unlocked: true, WPM: 14, Accuracy: 97, Date: "2024-03-01", HasResult: true},
		{Lesson: 3, Title: "words", Level: 1},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "পাঠ ১") || !strings.Contains(out, "পাঠ ৪") {
		t.Fatalf("expected bengali lesson numbers, got:\n%s", out)
	}
	if !strings.Contains(out, "done") || !strings.Contains(out, "locked") {
		t.Fatalf("expected statuses, got:\n%s", out)
	}
	if !strings.Contains(out, "97%") {
		t.Fatalf("expected accuracy, got:\n%s", out)
	}
}
