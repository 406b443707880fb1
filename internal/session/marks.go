package session

// MarkState is the display state of one target rune.
type MarkState int

// Mark states.
const (
	MarkPending MarkState = iota
	MarkCorrect
	MarkIncorrect
)

// Mark pairs a target rune with its state against the current buffer.
type Mark struct {
	Rune  rune
	State MarkState
}

// Marks compares the buffer with the current target rune by rune.
// Runes typed past the end of the target are reported by Overflow.
func (s *Session) Marks() []Mark {
	item, ok := s.Current()
	if !ok {
		return nil
	}
	return Compare(item.Target, s.input)
}

// Overflow returns the runes typed beyond the current target.
func (s *Session) Overflow() string {
	item, ok := s.Current()
	if !ok {
		return ""
	}
	target := []rune(item.Target)
	typed := []rune(s.input)
	if len(typed) <= len(target) {
		return ""
	}
	return string(typed[len(target):])
}

// Compare marks each rune of target against typed.
func Compare(target, typed string) []Mark {
	t := []rune(target)
	in := []rune(typed)
	marks := make([]Mark, len(t))
	for i, r := range t {
		marks[i] = Mark{Rune: r}
		if i >= len(in) {
			continue
		}
		if in[i] == r {
			marks[i].State = MarkCorrect
		} else {
			marks[i].State = MarkIncorrect
		}
	}
	return marks
}
