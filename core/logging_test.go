package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	closer, err := SetupLogging(false, t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if closer != nil {
		t.Error("Expected nil closer when debug=false")
		closer.Close()
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	closer, err := SetupLogging(true, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if closer == nil {
		t.Fatal("Expected non-nil closer when debug=true")
	}

	log.Info("test message", "key", 42)
	closer.Close()

	info, err := os.Stat(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}

	// Leave a quiet default for other tests
	if _, err := SetupLogging(false, dir); err != nil {
		t.Fatalf("Expected no error resetting logger, got %v", err)
	}
}
