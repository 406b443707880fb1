package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/bornomala/internal/model"
)

// ErrDataUnavailable reports that the syllabus or the Avro hints could not be loaded.
var ErrDataUnavailable = errors.New("lesson data unavailable")

const (
	syllabusFile = "syllabus.json"
	levelsFile   = "levels.yaml"
)

//go:embed data/*
var dataFS embed.FS

// Default loads the catalog bundled with the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return LoadFS(sub)
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDataUnavailable, dir)
	}
	return LoadFS(os.DirFS(dir))
}

// HintFile returns the hint file name for a layout.
func HintFile(layout model.Layout) string {
	return string(layout) + "_hint.json"
}

// LoadFS loads syllabus.json, the per-layout hint files and an optional levels.yaml.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	lessons, err := readLessons(fsys)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	hints := map[model.Layout][]*model.HintData{}
	for _, layout := range model.Layouts {
		entries, err := readHints(fsys, HintFile(layout))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && layout != model.LayoutAvro {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, HintFile(layout), err)
		}
		hints[layout] = entries
	}

	levels, err := readLevels(fsys, len(lessons))
	if err != nil {
		return nil, err
	}
	return New(lessons, levels, hints), nil
}

func readLessons(fsys fs.FS) ([]model.Lesson, error) {
	raw, err := fs.ReadFile(fsys, syllabusFile)
	if err != nil {
		return nil, err
	}
	if err := validateJSON(syllabusSchema, raw); err != nil {
		return nil, fmt.Errorf("%s: %w", syllabusFile, err)
	}
	var lessons []model.Lesson
	if err := json.Unmarshal(raw, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", syllabusFile, err)
	}
	return lessons, nil
}

func readHints(fsys fs.FS, name string) ([]*model.HintData, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	if err := validateJSON(hintsSchema, raw); err != nil {
		return nil, err
	}
	var entries []*model.HintData
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}
	return entries, nil
}

func readLevels(fsys fs.FS, lessonCount int) ([]model.LessonLevel, error) {
	raw, err := fs.ReadFile(fsys, levelsFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", levelsFile, err)
		}
		if lessonCount == defaultLessonCount {
			return DefaultLevels(), nil
		}
		return singleLevel(lessonCount), nil
	}
	var levels []model.LessonLevel
	if err := yaml.Unmarshal(raw, &levels); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", levelsFile, err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%s defines no levels", levelsFile)
	}
	return levels, nil
}
