// Package bangla holds small Bengali script helpers.
package bangla

import (
	"strconv"
	"strings"
)

var digits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// Digits replaces ASCII digits in s with Bengali digits.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Number formats n with Bengali digits.
func Number(n int) string {
	return Digits(strconv.Itoa(n))
}

// IsBengali reports whether r belongs to the Bengali Unicode block.
func IsBengali(r rune) bool {
	return r >= 0x0980 && r <= 0x09FF
}

// IsBengaliWord reports whether every non-space rune of s is Bengali.
func IsBengaliWord(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if r == ' ' || r == '\u200c' || r == '\u200d' {
			continue
		}
		if !IsBengali(r) {
			return false
		}
	}
	return true
}

// ToPhonetic is a placeholder for Bengali to Latin transliteration. It returns its input.
func ToPhonetic(text string) string {
	return text
}
