package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matsen/lcs/internal/concept"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "testdata", "ontology", name)
}

func TestReadAllConcepts(t *testing.T) {
	concepts, err := ReadAllConcepts(fixture("animals.jsonl"))
	if err != nil {
		t.Fatalf("ReadAllConcepts() error = %v", err)
	}

	if len(concepts) != 6 {
		t.Errorf("ReadAllConcepts() returned %d concepts, want 6", len(concepts))
	}

	if concepts[0].Name != "root" || !concepts[0].IsRoot() {
		t.Errorf("First concept = %+v, want root", concepts[0])
	}
	if concepts[2].Description != "Warm-blooded vertebrates" {
		t.Errorf("mammal Description = %q", concepts[2].Description)
	}
}

func TestReadAllConcepts_NonexistentFile(t *testing.T) {
	concepts, err := ReadAllConcepts("/nonexistent/path/concepts.jsonl")
	if err != nil {
		t.Fatalf("ReadAllConcepts() error = %v, want nil for nonexistent file", err)
	}
	if concepts != nil {
		t.Errorf("ReadAllConcepts() = %v, want nil", concepts)
	}
}

func TestReadAllConcepts_InvalidConcept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	content := `{"name":"root"}
{"name":"bad name","parent":"root"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadAllConcepts(path)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("ReadAllConcepts() error = %v, want error at line 2", err)
	}
}

func TestReadAllConcepts_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	if err := os.WriteFile(path, []byte("{not json}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadAllConcepts(path); err == nil {
		t.Error("ReadAllConcepts() error = nil, want parse error")
	}
}

func TestWriteAndReadConcepts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concepts.jsonl")

	testConcepts := []concept.Concept{
		{Name: "root"},
		{Name: "animal", Parent: "root", Description: "Living thing that moves"},
	}

	if err := WriteAllConcepts(path, testConcepts); err != nil {
		t.Fatalf("WriteAllConcepts() error = %v", err)
	}

	readConcepts, err := ReadAllConcepts(path)
	if err != nil {
		t.Fatalf("ReadAllConcepts() error = %v", err)
	}

	if len(readConcepts) != 2 {
		t.Fatalf("ReadAllConcepts() returned %d concepts, want 2", len(readConcepts))
	}
	if readConcepts[1] != testConcepts[1] {
		t.Errorf("round trip = %+v, want %+v", readConcepts[1], testConcepts[1])
	}
}
