package bangla

import "testing"

func TestNumber(t *testing.T) {
	if got := Number(57); got != "৫৭" {
		t.Fatalf("expected ৫৭, got %q", got)
	}
	if got := Digits("WPM 10, 95%"); got != "WPM ১০, ৯৫%" {
		t.Fatalf("unexpected digits: %q", got)
	}
}

func TestIsBengaliWord(t *testing.T) {
	for _, w := range []string{"আমার", "আমার সোনার বাংলা", "ক্ষ"} {
		if !IsBengaliWord(w) {
			t.Fatalf("expected %q to be Bengali", w)
		}
	}
	for _, w := range []string{"", "amar", "বাংলা1", "  "} {
		if IsBengaliWord(w) {
			t.Fatalf("expected %q to be rejected", w)
		}
	}
}
