package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd, cleanup := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.Execute()
	cleanup()
	return out.String(), err
}

func TestReportGeneralCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "depot.sqlite3")
	out, err := runCmd(t, "--db", db, "--log", filepath.Join(t.TempDir(), "depot.log"), "report", "general", "--format", "csv")
	if err != nil {
		t.Fatalf("report general: %v", err)
	}
	if !strings.Contains(out, "Sina Gerard Small,50,12500.00,0,0.00,50") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestReportProductCommand(t *testing.T) {
	out, err := runCmd(t, "--backend", "memory", "report", "product", "2", "--from", "2025-05-01", "--to", "2025-05-01")
	if err != nil {
		t.Fatalf("report product: %v", err)
	}
	if !strings.Contains(out, "Periodical Report for Sina Gerard Big") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestReportRejectsBadInput(t *testing.T) {
	if _, err := runCmd(t, "--backend", "memory", "report", "general", "--format", "pdf"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := runCmd(t, "--backend", "memory", "report", "general", "--from", "2025-06-01", "--to", "2025-05-01"); err == nil {
		t.Error("expected error for reversed range")
	}
	if _, err := runCmd(t, "--backend", "memory", "report", "product", "x"); err == nil {
		t.Error("expected error for bad product id")
	}
	if _, err := runCmd(t, "--backend", "nosuch", "inventory"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestInventoryCommand(t *testing.T) {
	out, err := runCmd(t, "--backend", "memory", "inventory")
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	for _, want := range []string{"Sina Gerard Small", "Energy Drink", "available"} {
		if !strings.Contains(strings.ToLower(out), strings.ToLower(want)) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	var stdout, stderr bytes.Buffer
	cleanup, err := setupLoggerTo(&stdout, &stderr, path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}

	slog.Info("hello")
	slog.Error("boom")
	cleanup()

	if !strings.Contains(stdout.String(), "hello") || strings.Contains(stdout.String(), "boom") {
		t.Errorf("unexpected stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "boom") {
		t.Errorf("unexpected log file: %q", data)
	}
}

func TestSetupLoggerLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cleanup, err := setupLoggerTo(&stdout, &stderr, "", slog.LevelWarn)
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	defer cleanup()

	logger := slog.Default().With("component", "test").WithGroup("g")
	logger.Debug("quiet")
	logger.Info("skipped")
	logger.Warn("careful", "n", 1)
	logger.Error("boom")

	if strings.Contains(stdout.String(), "quiet") || strings.Contains(stdout.String(), "skipped") {
		t.Errorf("expected records below warn dropped: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "careful") || !strings.Contains(stdout.String(), "component=test") || !strings.Contains(stdout.String(), "g.n=1") {
		t.Errorf("unexpected stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "boom") || strings.Contains(stderr.String(), "careful") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestFailedCommandReleasesLogger(t *testing.T) {
	before := slog.Default()
	path := filepath.Join(t.TempDir(), "depot.log")

	_, err := runCmd(t, "--backend", "memory", "--log", path, "report", "product", "999")
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
	if slog.Default() != before {
		t.Error("expected default logger restored after failed command")
	}

	slog.Info("after command")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "storage ready") {
		t.Errorf("expected command logs in file: %q", data)
	}
	if strings.Contains(string(data), "after command") {
		t.Errorf("expected log file detached after command: %q", data)
	}
}

func TestLogLevelFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depot.log")
	if _, err := runCmd(t, "--backend", "memory", "--log", path, "--log-level", "error", "inventory"); err != nil {
		t.Fatalf("inventory: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "storage ready") {
		t.Errorf("expected info records dropped at error level: %q", data)
	}

	if _, err := runCmd(t, "--backend", "memory", "--log-level", "loud", "inventory"); err == nil {
		t.Error("expected error for unknown log level")
	}
}
