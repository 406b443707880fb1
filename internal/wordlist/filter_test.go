package wordlist

import (
	"testing"

	"github.com/verte-zerg/bornomala/internal/model"
)

func TestFilterBengali(t *testing.T) {
	if !FilterBengali(model.Item{Target: "আমার সোনার", Hint: "amar sonar"}) {
		t.Fatalf("expected bengali phrase to pass")
	}
	for _, item := range []model.Item{
		{Target: "hello", Hint: "hello"},
		{Target: "কাক1", Hint: "kak"},
	} {
		if FilterBengali(item) {
			t.Fatalf("expected %+v to be rejected", item)
		}
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	items := []model.Item{{Target: "ক", Hint: "k"}, {Target: "x", Hint: "x"}, {Target: "খ", Hint: "kh"}}
	got := Filter(items, FilterBengali)
	if len(got) != 2 || got[0].Target != "ক" || got[1].Target != "খ" {
		t.Fatalf("unexpected filter result %+v", got)
	}
}
