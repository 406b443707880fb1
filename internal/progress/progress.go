// Package progress persists per-layout progress records and user preferences.
// Read and write failures never propagate as fatal errors: reads fall back to
// defaults and every failure is logged.
package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/verte-zerg/bornomala/internal/eventlog"
	"github.com/verte-zerg/bornomala/internal/model"
)

// PreferencesKey is the storage key of the preference blob.
const PreferencesKey = "preferences"

// KV is a string key/value backend.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes progress records through a KV backend.
type Store struct {
	kv  KV
	log *eventlog.Logger
}

// New returns a Store. log may be nil.
func New(kv KV, log *eventlog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Key returns the storage key of a layout's progress record.
func Key(layout model.Layout) string {
	return "progress:" + string(layout)
}

// Load returns the record for layout, or defaults when it is absent or unreadable.
func (s *Store) Load(ctx context.Context, layout model.Layout) model.ProgressRecord {
	raw, ok, err := s.kv.Get(ctx, Key(layout))
	if err != nil {
		s.warn(eventlog.EventProgressLoadFailed, layout, err)
		return model.NewProgressRecord()
	}
	if !ok {
		return model.NewProgressRecord()
	}
	rec, err := Decode(raw)
	if err != nil {
		s.warn(eventlog.EventProgressLoadFailed, layout, err)
		return model.NewProgressRecord()
	}
	return rec
}

// Save writes rec for layout. Failures are logged and returned.
func (s *Store) Save(ctx context.Context, layout model.Layout, rec model.ProgressRecord) error {
	data, err := json.Marshal(normalize(rec))
	if err != nil {
		s.warn(eventlog.EventProgressSaveFailed, layout, err)
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := s.kv.Put(ctx, Key(layout), string(data)); err != nil {
		s.warn(eventlog.EventProgressSaveFailed, layout, err)
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Reset clears the record for layout and stores the defaults.
func (s *Store) Reset(ctx context.Context, layout model.Layout) model.ProgressRecord {
	if err := s.kv.Delete(ctx, Key(layout)); err != nil {
		s.warn(eventlog.EventProgressSaveFailed, layout, err)
	}
	rec := model.NewProgressRecord()
	_ = s.Save(ctx, layout, rec)
	s.log.Info(eventlog.Event{Event: eventlog.EventProgressReset, Layout: string(layout)})
	return rec
}

// Decode parses a stored record. Level 0 is always unlocked and duplicate
// performance entries collapse to the last one per lesson.
func Decode(raw string) (model.ProgressRecord, error) {
	var rec model.ProgressRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return model.ProgressRecord{}, fmt.Errorf("failed to decode progress: %w", err)
	}
	return normalize(rec), nil
}

func normalize(rec model.ProgressRecord) model.ProgressRecord {
	rec.CompletedLessons = rec.CompletedLessons.Clone()
	rec.UnlockedLevels = rec.UnlockedLevels.Clone()
	rec.UnlockedLevels.Add(0)

	perf := make([]model.PerformanceEntry, 0, len(rec.Performance))
	pos := map[int]int{}
	for _, p := range rec.Performance {
		if i, ok := pos[p.Lesson]; ok {
			perf[i] = p
			continue
		}
		pos[p.Lesson] = len(perf)
		perf = append(perf, p)
	}
	rec.Performance = perf
	return rec
}

func (s *Store) warn(event string, layout model.Layout, err error) {
	s.log.Warn(eventlog.Event{Event: event, Layout: string(layout), Error: err.Error()})
}
