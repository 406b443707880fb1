// Package wordlist loads custom practice lists from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/bornomala/internal/bangla"
	"github.com/verte-zerg/bornomala/internal/model"
)

// LoadItems reads one item per line from the provided file path.
// A line is "target<TAB>hint" or a bare target; blank lines and lines starting
// with '#' are skipped. Bare targets get bangla.ToPhonetic as their hint.
func LoadItems(path string) ([]model.Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var items []model.Item
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		item, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return items, nil
}

// ParseLine parses one word list line.
func ParseLine(line string) (model.Item, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return model.Item{}, false
	}
	target, hint, found := strings.Cut(line, "\t")
	target = strings.TrimSpace(target)
	hint = strings.TrimSpace(hint)
	if target == "" {
		return model.Item{}, false
	}
	if !found || hint == "" {
		hint = bangla.ToPhonetic(target)
	}
	return model.Item{Target: target, Hint: hint}, true
}
