package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/bornomala/internal/session"
	"github.com/verte-zerg/bornomala/internal/theme"
)

func testStyles() styles {
	return newStyles(theme.For(true))
}

func TestBuildStyledRunesCursor(t *testing.T) {
	st := testStyles()
	marks := session.Compare("ab", "a")

	runes := buildStyledRunes(st, marks, []rune("a"), nil)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != st.correct.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != st.accent.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	st := testStyles()
	marks := session.Compare("ab", "ax")

	runes := buildStyledRunes(st, marks, []rune("ax"), nil)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[1].s != st.incorrect.Render("b") {
		t.Fatalf("expected incorrect style on the target rune")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	st := testStyles()
	marks := session.Compare("a b", "axb")

	runes := buildStyledRunes(st, marks, []rune("axb"), nil)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != st.incorrect.Render("•") {
		t.Fatalf("expected dot for wrong space")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected the dot to keep its space slot for wrapping")
	}
}

func TestBuildStyledRunesOverflow(t *testing.T) {
	st := testStyles()
	marks := session.Compare("ক", "কখগ")

	runes := buildStyledRunes(st, marks, []rune("কখগ"), []rune("খগ"))
	if len(runes) != 3 {
		t.Fatalf("expected target plus 2 overflow runes, got %d", len(runes))
	}
	if runes[2].s != st.incorrect.Render("গ") {
		t.Fatalf("expected overflow in incorrect style")
	}
}

func TestWordForCursor(t *testing.T) {
	words := findWords([]rune("আমি ভাত খাই"))
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	w := wordForCursor(words, 4)
	if w == nil || w.start != 4 {
		t.Fatalf("expected second word, got %+v", w)
	}
	if w := wordForCursor(words, 3); w == nil || w.start != 4 {
		t.Fatalf("cursor on a space should select the following word, got %+v", w)
	}
	if w := wordForCursor(words, -1); w == nil || w.start != 0 {
		t.Fatalf("finished input should select the first word, got %+v", w)
	}
}

func TestWrapStyledRunesBreaksAtSpace(t *testing.T) {
	runes := []styledRune{}
	for _, r := range "ab cd" {
		runes = append(runes, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	out := wrapStyledRunes(runes, 3)
	if out != "ab\ncd" {
		t.Fatalf("unexpected wrap: %q", out)
	}
	if got := wrapStyledRunes(runes, 0); got != "ab cd" {
		t.Fatalf("unexpected unwrapped output: %q", got)
	}
	long := wrapStyledRunes(runes[:2], 1)
	if strings.Count(long, "\n") != 1 {
		t.Fatalf("expected hard break for a word wider than the line: %q", long)
	}
}
