package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.json")
}

func TestRunGlider(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("2 1\n3 2\n1 3\n2 3\n3 3\n")

	code := run(context.Background(), []string{"-config", missingConfig(t), "-iterations", "2"}, stdin, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	frames := strings.Split(strings.TrimSuffix(stdout.String(), "\n\n"), "\n\n")
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2:\n%s", len(frames), stdout.String())
	}
	rows := strings.Split(frames[0], "\n")
	if len(rows) != 20 || len(rows[0]) != 80 {
		t.Fatalf("frame is %d rows of %d, want 20 of 80", len(rows), len(rows[0]))
	}
	if rows[2][1] != '*' || rows[2][3] != '*' || rows[4][2] != '*' {
		t.Fatalf("first frame does not show the moved glider:\n%s", frames[0])
	}
	if !strings.Contains(stderr.String(), "Gen: 2") {
		t.Fatalf("summary missing from stderr: %s", stderr.String())
	}
}

func TestRunBadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", missingConfig(t)}, strings.NewReader("1 1\noops\n"), &stdout, &stderr)
	if code != exitBadInput {
		t.Fatalf("exit code = %d, want %d", code, exitBadInput)
	}
	if !strings.Contains(stderr.String(), "Bad input") {
		t.Fatalf("stderr = %q, want a bad input message", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should render on bad input, got %q", stdout.String())
	}
}

func TestRunStopsOnStillLife(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", missingConfig(t), "-pattern", "block"}, strings.NewReader(""), &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("a still life should not render any frame, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "still life") {
		t.Fatalf("stderr = %q, want the still life status", stderr.String())
	}
}

func TestRunFilesAndConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.json")
	if err := os.WriteFile(config, []byte(`{"view_max_x": 3, "view_max_y": 3, "live_marker": "#", "dead_marker": "."}`), 0o644); err != nil {
		t.Fatal(err)
	}
	pattern := filepath.Join(dir, "blinker.txt")
	if err := os.WriteFile(pattern, []byte("0 1\n1 1\n2 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", config, "-iterations", "2", pattern}, strings.NewReader(""), &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	want := ".#.\n.#.\n.#.\n\n...\n###\n...\n\n"
	if stdout.String() != want {
		t.Fatalf("stdout =\n%s\nwant\n%s", stdout.String(), want)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-config", missingConfig(t), "-pattern", "blinker"}, strings.NewReader(""), &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 || !strings.Contains(stderr.String(), "Shutting down") {
		t.Fatalf("cancelled run should stop before rendering, stdout %q stderr %q", stdout.String(), stderr.String())
	}
}

func TestRunUnknownPattern(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", missingConfig(t), "-pattern", "nope"}, strings.NewReader(""), &stdout, &stderr)
	if code != exitFailure {
		t.Fatalf("exit code = %d, want %d", code, exitFailure)
	}
}
