package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArtifactName(t *testing.T) {
	if name := ArtifactName("item", "sword", "json"); name != "item_sword.json" {
		t.Errorf("ArtifactName() = %q", name)
	}
}

func TestWriteArtifact(t *testing.T) {
	tmp := t.TempDir()
	good := filepath.Join(tmp, "client")

	// A regular file where a root directory is expected makes MkdirAll fail
	blocked := filepath.Join(tmp, "blocked")
	if err := os.WriteFile(blocked, nil, 0644); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}

	results := WriteArtifact([]string{blocked, good}, filepath.Join("sub", "dir"), "item_sword.json", "json", []byte("[]"))
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Error("Expected the blocked root to fail")
	}
	if results[1].Err != nil {
		t.Fatalf("Expected the second root to succeed, got %v", results[1].Err)
	}

	path := filepath.Join(good, "sub", "dir", "item_sword.json")
	if results[1].Path != path {
		t.Errorf("Expected path %q, got %q", path, results[1].Path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Unexpected content %q", data)
	}

	// Writing again into existing directories succeeds
	again := WriteArtifact([]string{good}, filepath.Join("sub", "dir"), "item_sword.json", "json", []byte("[]"))
	if again[0].Err != nil {
		t.Errorf("Expected rewrite to succeed, got %v", again[0].Err)
	}
}
