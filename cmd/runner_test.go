package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mpdfmt/internal/library"
	"github.com/desertthunder/mpdfmt/internal/shared"
	tu "github.com/desertthunder/mpdfmt/internal/testing"
	"github.com/desertthunder/mpdfmt/internal/translator"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	lib, err := library.Decode([]byte(tu.LibraryTOML))
	if err != nil {
		t.Fatalf("failed to decode library fixture: %v", err)
	}

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Library: lib,
		Logger:  shared.NewLogger(io.Discard),
		Output:  output,
		Clock:   translator.FixedClock(time.Unix(1234567, 0)),
	})
	return runner, output
}

func run(r *Runner, args ...string) error {
	return newApp(r).Run(context.Background(), append([]string{"mpdfmt"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			lib := &library.Library{}
			clock := translator.FixedClock(time.Unix(0, 0))

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				Library:    lib,
				Logger:     logger,
				Output:     output,
				Clock:      clock,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
			if runner.library != lib {
				t.Error("expected library to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.clock == nil {
				t.Error("expected clock to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Fatal("expected default config to be set")
			}
			if runner.config.Output.Format != "mpd" {
				t.Errorf("expected default format mpd, got %s", runner.config.Output.Format)
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil clock uses system clock", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Clock: nil})

			if runner.clock != translator.SystemClock {
				t.Error("expected clock to default to translator.SystemClock")
			}
			if d := time.Since(runner.clock.Now()); d < 0 || d > time.Second {
				t.Errorf("expected wall clock time, got %v off", d)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			data := map[string]string{"key": "value"}
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("writeLines terminates each line", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeLines("one", "\ntwo"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "one\n\ntwo\n" {
				t.Errorf("expected 'one\\n\\ntwo\\n', got %q", result)
			}
		})

		t.Run("writeLines stops at the first failure", func(t *testing.T) {
			limited := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limited})

			err := runner.writeLines("one", "two")
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		want := []string{"track", "playlist", "tracklist", "tagcache", "export", "tui", "setup"}
		if len(commands) != len(want) {
			t.Fatalf("expected %d commands, got %d", len(want), len(commands))
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Fatalf("command at index %d is nil", i)
			}
			if cmd.Name != want[i] {
				t.Errorf("command %d: expected %s, got %s", i, want[i], cmd.Name)
			}
		}
	})

	t.Run("before", func(t *testing.T) {
		t.Run("loads config named by --config", func(t *testing.T) {
			runner, output := newTestRunner(t)
			configPath := filepath.Join(t.TempDir(), "config.toml")
			conf := "[output]\nformat = \"markdown\"\n"
			if err := os.WriteFile(configPath, []byte(conf), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			if err := run(runner, "--config", configPath, "playlist", "--name", "Favourites"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if runner.configPath != configPath {
				t.Errorf("expected configPath %s, got %s", configPath, runner.configPath)
			}
			if !strings.HasPrefix(output.String(), "# Favourites\n") {
				t.Errorf("expected markdown output, got %q", output.String())
			}
		})

		t.Run("invalid config fails", func(t *testing.T) {
			runner, _ := newTestRunner(t)
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte("[output\n"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			err := run(runner, "--config", configPath, "playlist", "--name", "Favourites")
			if !errors.Is(err, shared.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("--verbose enables debug logging", func(t *testing.T) {
			runner, _ := newTestRunner(t)

			if err := run(runner, "--verbose", "playlist", "--name", "Radio"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if runner.logger.GetLevel() != log.DebugLevel {
				t.Errorf("expected debug level, got %v", runner.logger.GetLevel())
			}
		})
	})

	t.Run("loadLibrary", func(t *testing.T) {
		t.Run("reads --library", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Logger: shared.NewLogger(io.Discard), Output: output})

			if err := run(runner, "--library", tu.WriteLibrary(t), "playlist", "--name", "Radio"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if runner.library == nil {
				t.Fatal("expected library to be cached on the runner")
			}
			if !strings.Contains(output.String(), "file: http://radio.example.com/stream\n") {
				t.Errorf("unexpected output %q", output.String())
			}
		})

		t.Run("no configured path", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Library.Path = ""
			runner := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(io.Discard), Output: io.Discard})

			err := run(runner, "playlist", "--name", "Radio")
			if !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})

		t.Run("missing file", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: shared.NewLogger(io.Discard), Output: io.Discard})

			err := run(runner, "--library", filepath.Join(t.TempDir(), "nope.toml"), "playlist", "--name", "Radio")
			if !errors.Is(err, shared.ErrMissingLibrary) {
				t.Errorf("expected ErrMissingLibrary, got %v", err)
			}
		})
	})
}
