package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/devsheet/internal/catalog"
	"github.com/jask/devsheet/internal/content"
	"github.com/jask/devsheet/internal/page"
	"github.com/jask/devsheet/internal/render"
)

func TestRenderDocPlain(t *testing.T) {
	doc := &page.Document{}
	doc.Header("Title")
	doc.Code("bash", "git status")
	out, err := renderDoc(doc, 40, "not-a-style", true)
	if err != nil {
		t.Fatalf("plain output ignores style, got %v", err)
	}
	if !strings.HasPrefix(out, "# Title") || !strings.Contains(out, "```bash\ngit status\n```") {
		t.Fatalf("plain output = %q", out)
	}
}

func TestRenderDocRejectsUnknownStyle(t *testing.T) {
	_, err := renderDoc(&page.Document{}, 40, "not-a-style", false)
	if !errors.Is(err, render.ErrUnknownStyle) {
		t.Fatalf("err = %v", err)
	}
}

func TestIsTerminalOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Fatalf("a regular file is not a terminal")
	}
}

func TestIsTerminalOnDevNull(t *testing.T) {
	f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open %s: %v", os.DevNull, err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Fatalf("%s is a character device but not a terminal", os.DevNull)
	}
}

func TestIsTerminalOnBuffer(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Fatalf("a buffer is not a terminal")
	}
}

// runCLI runs the command line with an isolated config file.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("DEVSHEET_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"devsheet"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestShowUnknownTopicSuggests(t *testing.T) {
	code, stdout, stderr := runCLI(t, "show", "Kolada AP")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	want := `unknown topic "Kolada AP" (did you mean "Kolada API"?)`
	if !strings.Contains(stderr, want) {
		t.Fatalf("stderr = %q, want it to contain %q", stderr, want)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want nothing", stdout)
	}
}

func TestShowPrintsTopicBySlug(t *testing.T) {
	code, stdout, stderr := runCLI(t, "show", "--plain", "github-commands")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if !strings.HasPrefix(stdout, "# GitHub Commands") {
		t.Fatalf("stdout starts with %q", firstLine(stdout))
	}
	if !strings.Contains(stdout, "git commit --amend") {
		t.Fatalf("stdout is missing the advanced git block")
	}
}

func TestShowWithoutTopicFails(t *testing.T) {
	code, _, stderr := runCLI(t, "show")
	if code != 1 || !strings.Contains(stderr, "missing topic") {
		t.Fatalf("code = %d stderr = %q", code, stderr)
	}
}

func TestListPrintsTopicsInOrder(t *testing.T) {
	code, stdout, stderr := runCLI(t, "list")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	pos := -1
	for _, id := range content.Topics() {
		label := id.String()
		i := strings.Index(stdout, label)
		if i < 0 {
			t.Fatalf("list output is missing %q", label)
		}
		if i <= pos {
			t.Fatalf("%q is out of order in %q", label, stdout)
		}
		if !strings.Contains(stdout, catalog.Slug(label)) {
			t.Fatalf("list output is missing slug %q", catalog.Slug(label))
		}
		pos = i
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
