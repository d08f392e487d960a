package storage

import (
	"errors"
	"testing"

	"github.com/matsen/lcs/internal/concept"
	"github.com/matsen/lcs/internal/lcs"
)

func TestPathToTop_Index(t *testing.T) {
	db, _ := buildIndex(t, fixture("animals.yaml"))

	tests := []struct {
		name string
		want []string
	}{
		{"root", []string{"root"}},
		{"mammal", []string{"mammal", "animal", "root"}},
		{"lizard", []string{"lizard", "reptile", "animal", "root"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := db.Concept(tt.name)
			if err != nil {
				t.Fatalf("Concept() error = %v", err)
			}
			path, err := db.PathToTop(c)
			if err != nil {
				t.Fatalf("PathToTop() error = %v", err)
			}
			if len(path) != len(tt.want) {
				t.Fatalf("PathToTop(%s) = %v, want %v", tt.name, path, tt.want)
			}
			for i, name := range tt.want {
				if path[i].Name != name {
					t.Errorf("PathToTop(%s)[%d] = %s, want %s", tt.name, i, path[i], name)
				}
			}
		})
	}
}

func TestSubsumes_Index(t *testing.T) {
	db, _ := buildIndex(t, fixture("animals.kb"))

	tests := []struct {
		a, b string
		want bool
	}{
		{"root", "dog", true},
		{"animal", "lizard", true},
		{"dog", "dog", true},
		{"mammal", "lizard", false},
		{"dog", "mammal", false},
	}

	for _, tt := range tests {
		a, _ := db.Concept(tt.a)
		b, _ := db.Concept(tt.b)
		got, err := db.Subsumes(a, b)
		if err != nil {
			t.Fatalf("Subsumes(%s, %s) error = %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("Subsumes(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := db.Subsumes(nil, &concept.Concept{Name: "dog"}); !errors.Is(err, concept.ErrConceptNotFound) {
		t.Errorf("Subsumes(nil, dog) error = %v, want ErrConceptNotFound", err)
	}
}

func TestConcept_KeepsDescription(t *testing.T) {
	db, _ := buildIndex(t, fixture("animals.jsonl"))

	c, err := db.Concept("mammal")
	if err != nil {
		t.Fatalf("Concept() error = %v", err)
	}
	if c.Description != "Warm-blooded vertebrates" {
		t.Errorf("Description = %q", c.Description)
	}
	root, err := db.Concept("root")
	if err != nil {
		t.Fatal(err)
	}
	if !root.IsRoot() {
		t.Errorf("root has parent %q", root.Parent)
	}
}

func TestIndexRanksLikeOntology(t *testing.T) {
	db, o := buildIndex(t, fixture("animals.kb"))

	for _, alg := range lcs.Algorithms {
		fromIndex, err := lcs.Pairs(db, alg)
		if err != nil {
			t.Fatalf("Pairs(index, %s) error = %v", alg, err)
		}
		fromMemory, err := lcs.Pairs(o, alg)
		if err != nil {
			t.Fatalf("Pairs(ontology, %s) error = %v", alg, err)
		}
		if len(fromIndex) != len(fromMemory) {
			t.Fatalf("%s: %d pairs from index, %d from memory", alg, len(fromIndex), len(fromMemory))
		}
		for i := range fromMemory {
			gi, gm := fromIndex[i], fromMemory[i]
			if gi.C1.Name != gm.C1.Name || gi.C2.Name != gm.C2.Name || gi.Similarity != gm.Similarity {
				t.Errorf("%s pair %d: index (%s, %s, %v), memory (%s, %s, %v)",
					alg, i, gi.C1, gi.C2, gi.Similarity, gm.C1, gm.C2, gm.Similarity)
			}
		}
	}
}
