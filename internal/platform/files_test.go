package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "staging")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Creating again is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error for existing dir, got %v", err)
	}
}

func TestJobDir(t *testing.T) {
	staging := t.TempDir()

	dir, err := JobDir(staging, "job-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if dir != filepath.Join(staging, "job-1") {
		t.Errorf("Unexpected job dir: %s", dir)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected job dir to exist, got %v", err)
	}

	if _, err := JobDir(staging, ""); err == nil {
		t.Error("Expected error for empty job ID")
	}
}

func TestJobDir_Distinct(t *testing.T) {
	staging := t.TempDir()

	a, err := JobDir(staging, "job-a")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, err := JobDir(staging, "job-b")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if a == b {
		t.Error("Job directories for distinct IDs must differ")
	}
}

func TestFindAudioFile(t *testing.T) {
	dir := t.TempDir()

	files := []string{"01 - Track.mp3", "01 - Track.webp", "leftover.part"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create fixture: %v", err)
		}
	}

	path, err := FindAudioFile(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(path) != "01 - Track.mp3" {
		t.Errorf("Expected '01 - Track.mp3', got %s", filepath.Base(path))
	}
}

func TestFindAudioFile_NoAudio(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "video.mp4"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}

	if _, err := FindAudioFile(dir); err == nil {
		t.Error("Expected error when no audio file present")
	}
}
