package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pulsepad/pulsepad/internal/config"
	"github.com/pulsepad/pulsepad/internal/session"
)

// missingConfig returns a config path that does not exist, so commands
// fall back to defaults instead of picking up a developer's real file.
func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "pulsepad.yaml")
}

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCmd()
	buf := &bytes.Buffer{}
	restore := captureStdout(buf)
	if err := cmd.Execute(); err != nil {
		restore()
		t.Fatalf("version failed: %v", err)
	}
	restore()
	if !strings.Contains(buf.String(), "pulsepad version") {
		t.Fatalf("expected version banner, got: %s", buf.String())
	}
}

func TestDurationCommand(t *testing.T) {
	t.Run("single multiplier", func(t *testing.T) {
		cmd := newDurationCmd()
		cmd.SetArgs([]string{"1.5", "--config", missingConfig(t)})
		buf := &bytes.Buffer{}
		restore := captureStdout(buf)
		if err := cmd.Execute(); err != nil {
			restore()
			t.Fatalf("duration failed: %v", err)
		}
		restore()
		if !strings.Contains(buf.String(), "x1.5 -> 1350ms (base 900ms)") {
			t.Fatalf("unexpected duration output: %s", buf.String())
		}
	})

	t.Run("garbage falls back to x1", func(t *testing.T) {
		cmd := newDurationCmd()
		cmd.SetArgs([]string{"fast", "--config", missingConfig(t)})
		buf := &bytes.Buffer{}
		restore := captureStdout(buf)
		if err := cmd.Execute(); err != nil {
			restore()
			t.Fatalf("duration failed: %v", err)
		}
		restore()
		if !strings.Contains(buf.String(), "x1 -> 900ms") {
			t.Fatalf("expected fallback duration, got: %s", buf.String())
		}
	})

	t.Run("out of range clamps", func(t *testing.T) {
		cmd := newDurationCmd()
		cmd.SetArgs([]string{"8", "--config", missingConfig(t)})
		buf := &bytes.Buffer{}
		restore := captureStdout(buf)
		if err := cmd.Execute(); err != nil {
			restore()
			t.Fatalf("duration failed: %v", err)
		}
		restore()
		if !strings.Contains(buf.String(), "x4 -> 3600ms") {
			t.Fatalf("expected clamped duration, got: %s", buf.String())
		}
	})

	t.Run("table marks clamped rows", func(t *testing.T) {
		cmd := newDurationCmd()
		cmd.SetArgs([]string{"--config", missingConfig(t)})
		buf := &bytes.Buffer{}
		restore := captureStdout(buf)
		if err := cmd.Execute(); err != nil {
			restore()
			t.Fatalf("duration failed: %v", err)
		}
		restore()
		output := buf.String()
		if !strings.Contains(output, "Base duration: 900ms") {
			t.Fatalf("missing base line: %s", output)
		}
		if !strings.Contains(output, "(clamped)") {
			t.Fatalf("expected clamped markers in table: %s", output)
		}
	})

	t.Run("base override", func(t *testing.T) {
		cmd := newDurationCmd()
		cmd.SetArgs([]string{"2", "--base-ms", "500", "--config", missingConfig(t)})
		buf := &bytes.Buffer{}
		restore := captureStdout(buf)
		if err := cmd.Execute(); err != nil {
			restore()
			t.Fatalf("duration failed: %v", err)
		}
		restore()
		if !strings.Contains(buf.String(), "x2 -> 1000ms (base 500ms)") {
			t.Fatalf("expected overridden base, got: %s", buf.String())
		}
	})
}

func TestInitDefaultsWritesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "pulsepad.yaml")

	cmd := newInitCmd()
	cmd.SetArgs([]string{"--defaults", "--config", cfgPath})
	buf := &bytes.Buffer{}
	restore := captureStdout(buf)
	if err := cmd.Execute(); err != nil {
		restore()
		t.Fatalf("init failed: %v", err)
	}
	restore()

	if !strings.Contains(buf.String(), "Wrote "+cfgPath) {
		t.Fatalf("expected write confirmation, got: %s", buf.String())
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if !strings.Contains(string(data), "theme: tokyo-night") {
		t.Fatalf("written config missing theme: %s", data)
	}

	cfg, err := config.Load(cfgPath, false)
	if err != nil {
		t.Fatalf("reload written config: %v", err)
	}
	if cfg.Multiplier != 1.0 || cfg.BaseMs != 900 {
		t.Fatalf("unexpected reloaded config: mult=%v base=%d", cfg.Multiplier, cfg.BaseMs)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "pulsepad.yaml")
	if err := config.Default().Save(cfgPath); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cmd := newInitCmd()
	cmd.SetArgs([]string{"--defaults", "--config", cfgPath})
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error for existing config")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd = newInitCmd()
	cmd.SetArgs([]string{"--defaults", "--force", "--config", cfgPath})
	buf := &bytes.Buffer{}
	restore := captureStdout(buf)
	if err := cmd.Execute(); err != nil {
		restore()
		t.Fatalf("init --force failed: %v", err)
	}
	restore()
}

func TestRunsCommandEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")

	cmd := newRunsCmd()
	cmd.SetArgs([]string{"--dir", dir, "--config", missingConfig(t)})
	buf := &bytes.Buffer{}
	restore := captureStdout(buf)
	if err := cmd.Execute(); err != nil {
		restore()
		t.Fatalf("runs failed: %v", err)
	}
	restore()
	if !strings.Contains(buf.String(), "No sessions recorded under "+dir) {
		t.Fatalf("expected empty message, got: %s", buf.String())
	}
}

func TestRunsCommandListsSummaries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")

	rec, err := session.NewRecorder(dir)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	summary := session.Summary{
		ID:         rec.ID,
		Status:     "completed",
		Runs:       3,
		LastRunMs:  1350,
		CounterA:   2,
		CounterB:   1,
		Multiplier: 1.5,
	}
	if err := rec.WriteArtifacts(config.Default(), summary, "event trail"); err != nil {
		t.Fatalf("WriteArtifacts failed: %v", err)
	}

	cmd := newRunsCmd()
	cmd.SetArgs([]string{"--dir", dir, "--config", missingConfig(t)})
	buf := &bytes.Buffer{}
	restore := captureStdout(buf)
	if err := cmd.Execute(); err != nil {
		restore()
		t.Fatalf("runs failed: %v", err)
	}
	restore()

	output := buf.String()
	if !strings.Contains(output, "completed") {
		t.Fatalf("missing status in listing: %s", output)
	}
	if !strings.Contains(output, "runs 3") || !strings.Contains(output, "counts 2/1") {
		t.Fatalf("missing totals in listing: %s", output)
	}
	if !strings.Contains(output, rec.ID) {
		t.Fatalf("missing session id in listing: %s", output)
	}
}

func captureStdout(w io.Writer) func() {
	orig := os.Stdout
	r, wpipe, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	os.Stdout = wpipe

	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(w, r)
		close(done)
	}()

	return func() {
		_ = wpipe.Close()
		<-done
		os.Stdout = orig
	}
}
