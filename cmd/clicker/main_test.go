package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napolitain/clicker-sim/internal/clicker"
	"github.com/napolitain/clicker-sim/internal/loader"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestQuietRun(t *testing.T) {
	out, _, err := execute(t, "--quiet", "--strategy", "none", "--duration", "5")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "none: total=5 resources=5 time=5 rate=1\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRunWithReport(t *testing.T) {
	out, _, err := execute(t, "-s", "cheap", "-s", "best", "-d", "1000", "--history", "--chart", "--parallel")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Strategy Comparison", "Best strategy:", "cheap purchases:", "best purchases:", "Cursor"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunWithFiles(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	configPath := filepath.Join(dir, "scenarios.json")

	if err := os.WriteFile(catalogPath, []byte("items:\n  - name: A\n    cost: 5\n    production: 1\n  - name: B\n    cost: 500\n    production: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configPath, []byte(`{"scenarios": [{"name": "Thrifty", "strategy": "cheap", "duration": 7}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "-q", "--catalog", catalogPath, "--config", configPath)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "Thrifty: total=9 resources=4 time=7 rate=2\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestUnknownStrategy(t *testing.T) {
	_, _, err := execute(t, "-q", "-s", "lottery", "-d", "10")
	if !errors.Is(err, clicker.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestStrategiesCommand(t *testing.T) {
	out, _, err := execute(t, "strategies")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, name := range clicker.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("missing strategy %q:\n%s", name, out)
		}
	}
}

func TestCatalogCommand(t *testing.T) {
	out, _, err := execute(t, "catalog")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Cursor", "Antimatter Condenser", "1.15"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	path := filepath.Join(t.TempDir(), "catalog.json")
	if _, _, err := execute(t, "catalog", "--export", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	catalog, err := loader.LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if catalog.Len() != 10 {
		t.Errorf("expected 10 exported items, got %d", catalog.Len())
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, logs, err := execute(t, "-q", "-v", "-s", "none", "-d", "5")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(out, "simulating") {
		t.Errorf("logs leaked to stdout: %q", out)
	}
	if !strings.Contains(logs, "simulating") || !strings.Contains(logs, "finished") {
		t.Errorf("expected progress logs, got %q", logs)
	}
}

func TestZeroDurationScenarioFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte("scenarios:\n  - name: Instant\n    strategy: cheap\n    duration: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "-q", "--config", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "Instant: total=0 resources=0 time=0 rate=1\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
