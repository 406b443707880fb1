package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/bornomala/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "bornomala.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestKVRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := st.Get(ctx, "progress:avro"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := st.Put(ctx, "progress:avro", `{"a":1}`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := st.Put(ctx, "progress:avro", `{"a":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, ok, err := st.Get(ctx, "progress:avro")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if value != `{"a":2}` {
		t.Fatalf("unexpected value %q", value)
	}
	if err := st.Delete(ctx, "progress:avro"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := st.Get(ctx, "progress:avro"); ok {
		t.Fatalf("expected key to be deleted")
	}
	if err := st.Delete(ctx, "progress:avro"); err != nil {
		t.Fatalf("delete of absent key: %v", err)
	}
}

func TestAttemptsFilterAndOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	insert := func(layout model.Layout, lesson int, offset time.Duration) string {
		start := base.Add(offset)
		id, err := st.InsertAttempt(ctx, model.Attempt{
			Layout:     layout,
			Lesson:     lesson,
			WPM:        12,
			Accuracy:   95,
			Keystrokes: 30,
			Mistakes:   1,
			StartedAt:  start,
			EndedAt:    start.Add(time.Minute),
			DurationMs: time.Minute.Milliseconds(),
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		return id
	}
	first := insert(model.LayoutAvro, 0, 0)
	insert(model.LayoutBijoy, 0, time.Hour)
	insert(model.LayoutAvro, 1, 2*time.Hour)
	last := insert(model.LayoutAvro, 1, 3*time.Hour)
	if first == "" || first == last {
		t.Fatalf("expected distinct generated ids")
	}

	all, err := st.ListAttempts(ctx, model.AttemptFilter{Layout: model.LayoutAvro})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != first || all[2].ID != last {
		t.Fatalf("unexpected avro attempts: %+v", all)
	}
	if !all[0].StartedAt.Equal(base) {
		t.Fatalf("unexpected start time %v", all[0].StartedAt)
	}

	recent, err := st.ListAttempts(ctx, model.AttemptFilter{Layout: model.LayoutAvro, Last: 2})
	if err != nil {
		t.Fatalf("list last: %v", err)
	}
	if len(recent) != 2 || recent[1].ID != last {
		t.Fatalf("unexpected last attempts: %+v", recent)
	}

	lesson := 1
	since := base.Add(90 * time.Minute)
	filtered, err := st.ListAttempts(ctx, model.AttemptFilter{Lesson: &lesson, Since: &since})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 attempts ending after since, got %d", len(filtered))
	}

	n, err := st.DeleteAttempts(ctx, model.LayoutAvro)
	if err != nil {
		t.Fatalf("delete attempts: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 deleted, got %d", n)
	}
	rest, err := st.ListAttempts(ctx, model.AttemptFilter{})
	if err != nil {
		t.Fatalf("list rest: %v", err)
	}
	if len(rest) != 1 || rest[0].Layout != model.LayoutBijoy {
		t.Fatalf("expected bijoy attempt to survive: %+v", rest)
	}
}
