package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/bornomala/internal/config"
	"github.com/verte-zerg/bornomala/internal/model"
)

func TestDefaultConfigTemplateLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Practice.Words != nil || cfg.Tutor.Layout != nil {
		t.Fatalf("expected every template value to be commented out")
	}
}

func TestApplyIntConfigRespectsChangedFlag(t *testing.T) {
	var words int
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().IntVar(&words, "words", 5, "")
	value := 12

	applyIntConfig(cmd, "words", &words, &value)
	if words != 12 {
		t.Fatalf("expected config value, got %d", words)
	}
	if err := cmd.Flags().Set("words", "7"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	applyIntConfig(cmd, "words", &words, &value)
	if words != 7 {
		t.Fatalf("expected flag value to win, got %d", words)
	}
}

func TestValidatePracticeConfig(t *testing.T) {
	if err := validatePracticeConfig(model.PracticeConfig{Words: 0}); err == nil {
		t.Fatalf("expected error for zero words")
	}
	if err := validatePracticeConfig(model.PracticeConfig{Words: 5, WeakFactor: -1}); err == nil {
		t.Fatalf("expected error for negative weak factor")
	}
	if err := validatePracticeConfig(model.PracticeConfig{Words: 5, WeakTop: 3, WeakFactor: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	ok, err := confirm(strings.NewReader("yes\n"), &out, "Reset? ")
	if err != nil || !ok {
		t.Fatalf("expected confirmation, got %v %v", ok, err)
	}
	if out.String() != "Reset? " {
		t.Fatalf("unexpected prompt: %q", out.String())
	}
	ok, err = confirm(strings.NewReader(""), &out, "Reset? ")
	if err != nil || ok {
		t.Fatalf("expected empty answer to decline, got %v %v", ok, err)
	}
}

func TestPrintPreferences(t *testing.T) {
	var buf bytes.Buffer
	if err := printPreferences(&buf, model.DefaultPreferences()); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"keyboardLayout = avro", "theme = system", "showKeyboardHint = true", "onboardingCompleted = false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestCatalogCheckBundled(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	rootCatalog = ""
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runCatalogCheckCmd(cmd, nil); err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(buf.String(), "9 lessons, 3 levels") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestCatalogCheckRejectsMissingDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	if err := runCatalogCheckCmd(cmd, []string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected error for missing catalog dir")
	}
}
