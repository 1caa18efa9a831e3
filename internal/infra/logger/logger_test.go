package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready, got %v", err)
	}

	want := filepath.Join(root, ".tourbook", "logs", "tourbook.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("catalog.test", "tours", 3)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected not ready after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"msg":"logger.initialized"`) {
		t.Fatalf("expected init line, got:\n%s", out)
	}
	if !strings.Contains(out, `"msg":"catalog.test"`) {
		t.Fatalf("expected debug line, got:\n%s", out)
	}
}

func TestSetupInfoLevelDropsDebug(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("hidden.event")
	_ = cleanup()

	b, err := os.ReadFile(filepath.Join(root, ".tourbook", "logs", "tourbook.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(b), "hidden.event") {
		t.Fatalf("expected debug event to be filtered")
	}
}

func TestSetupFailureLeavesDiscardLogger(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, ".tourbook")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Setup(Config{Root: root}); err == nil {
		t.Fatalf("expected error when .tourbook is a file")
	}
	if IsReady() == nil {
		t.Fatalf("expected not ready")
	}
	L().Info("still.safe")
}
