// Package keyboard describes the QWERTY keyboard and derives which key to press next.
package keyboard

import (
	"strings"
	"unicode"
)

// Special key names.
const (
	KeyBackspace  = "backspace"
	KeyTab        = "tab"
	KeyCapsLock   = "capslock"
	KeyEnter      = "enter"
	KeyShiftLeft  = "shiftleft"
	KeyShiftRight = "shiftright"
	KeySpace      = "space"
)

// Key is one physical key.
type Key struct {
	Name    string
	Shifted string
	Label   string
	Width   int
}

// Rows is the US QWERTY layout, top to bottom.
var Rows = [][]Key{
	{
		{Name: "`", Shifted: "~"}, {Name: "1", Shifted: "!"}, {Name: "2", Shifted: "@"},
		{Name: "3", Shifted: "#"}, {Name: "4", Shifted: "$"}, {Name: "5", Shifted: "%"},
		{Name: "6", Shifted: "^"}, {Name: "7", Shifted: "&"}, {Name: "8", Shifted: "*"},
		{Name: "9", Shifted: "("}, {Name: "0", Shifted: ")"}, {Name: "-", Shifted: "_"},
		{Name: "=", Shifted: "+"}, {Name: KeyBackspace, Label: "Bksp", Width: 6},
	},
	{
		{Name: KeyTab, Label: "Tab", Width: 5}, {Name: "q"}, {Name: "w"}, {Name: "e"},
		{Name: "r"}, {Name: "t"}, {Name: "y"}, {Name: "u"}, {Name: "i"}, {Name: "o"},
		{Name: "p"}, {Name: "[", Shifted: "{"}, {Name: "]", Shifted: "}"},
		{Name: "\\", Shifted: "|", Width: 4},
	},
	{
		{Name: KeyCapsLock, Label: "Caps", Width: 6}, {Name: "a"}, {Name: "s"},
		{Name: "d"}, {Name: "f"}, {Name: "g"}, {Name: "h"}, {Name: "j"}, {Name: "k"},
		{Name: "l"}, {Name: ";", Shifted: ":"}, {Name: "'", Shifted: "\""},
		{Name: KeyEnter, Label: "Enter", Width: 7},
	},
	{
		{Name: KeyShiftLeft, Label: "Shift", Width: 8}, {Name: "z"}, {Name: "x"},
		{Name: "c"}, {Name: "v"}, {Name: "b"}, {Name: "n"}, {Name: "m"},
		{Name: ",", Shifted: "<"}, {Name: ".", Shifted: ">"}, {Name: "/", Shifted: "?"},
		{Name: KeyShiftRight, Label: "Shift", Width: 8},
	},
	{
		{Name: KeySpace, Label: "Space", Width: 30},
	},
}

var shiftedToBase = buildShiftTable()

func buildShiftTable() map[string]string {
	out := map[string]string{}
	for _, row := range Rows {
		for _, k := range row {
			if k.Shifted != "" {
				out[k.Shifted] = k.Name
			}
		}
	}
	return out
}

// Highlight names the key to press next and whether Shift is needed.
type Highlight struct {
	Key   string
	Shift bool
}

// Next returns the highlight for the hint rune at position typed.
// It reports false once typed reaches the end of the hint.
func Next(hint string, typed int) (Highlight, bool) {
	runes := []rune(hint)
	if typed < 0 || typed >= len(runes) {
		return Highlight{}, false
	}
	return ForRune(runes[typed])
}

// ForRune maps a character to its key. Upper-case letters and shifted symbols need Shift.
func ForRune(r rune) (Highlight, bool) {
	if r == ' ' {
		return Highlight{Key: KeySpace}, true
	}
	if unicode.IsLetter(r) && unicode.IsUpper(r) {
		return Highlight{Key: strings.ToLower(string(r)), Shift: true}, true
	}
	s := string(r)
	if base, ok := shiftedToBase[s]; ok {
		return Highlight{Key: base, Shift: true}, true
	}
	if _, ok := keyIndex[s]; ok {
		return Highlight{Key: s}, true
	}
	return Highlight{}, false
}

var keyIndex = buildKeyIndex()

func buildKeyIndex() map[string]struct{} {
	out := map[string]struct{}{}
	for _, row := range Rows {
		for _, k := range row {
			out[k.Name] = struct{}{}
		}
	}
	return out
}
