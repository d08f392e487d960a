package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matsen/lcs/internal/concept"
	"github.com/matsen/lcs/internal/ontology"
)

func animals(t *testing.T) *ontology.Ontology {
	t.Helper()
	o, err := ontology.New([]concept.Concept{
		{Name: "root"},
		{Name: "animal", Parent: "root", Description: "Living <things>"},
		{Name: "mammal", Parent: "animal"},
		{Name: "reptile", Parent: "animal"},
		{Name: "dog", Parent: "mammal"},
		{Name: "lizard", Parent: "reptile"},
	})
	if err != nil {
		t.Fatalf("ontology.New() error = %v", err)
	}
	return o
}

func TestBuild(t *testing.T) {
	root, err := Build(animals(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if root.Concept.Name != "root" || root.Depth != 1 {
		t.Fatalf("root = %s at depth %d", root.Concept.Name, root.Depth)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}
	animal := root.Children[0]
	if len(animal.Children) != 2 {
		t.Fatalf("animal has %d children, want 2", len(animal.Children))
	}
	if animal.Children[0].Concept.Name != "mammal" || animal.Children[1].Concept.Name != "reptile" {
		t.Errorf("children of animal out of load order")
	}

	var visited []string
	root.Walk(func(n *Node) {
		visited = append(visited, n.Concept.Name)
	})
	want := "root animal mammal dog reptile lizard"
	if got := strings.Join(visited, " "); got != want {
		t.Errorf("Walk order = %q, want %q", got, want)
	}
}

func TestBuild_DepthMatchesOntology(t *testing.T) {
	o := animals(t)
	root, err := Build(o)
	if err != nil {
		t.Fatal(err)
	}
	root.Walk(func(n *Node) {
		d, err := o.Depth(n.Concept)
		if err != nil {
			t.Fatal(err)
		}
		if n.Depth != d {
			t.Errorf("%s: Depth = %d, ontology says %d", n.Concept.Name, n.Depth, d)
		}
	})
}

func TestWriteText(t *testing.T) {
	root, err := Build(animals(t))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, root); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	want := "root\n  animal\n    mammal\n      dog\n    reptile\n      lizard\n"
	if buf.String() != want {
		t.Errorf("WriteText() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestGenerateHTML(t *testing.T) {
	root, err := Build(animals(t))
	if err != nil {
		t.Fatal(err)
	}
	out := GenerateHTML("animals & friends", root)

	for _, want := range []string{
		"<title>animals &amp; friends</title>",
		`<details class="root" open>`,
		`title="Living &lt;things&gt;"`,
		`<div class="leaf"><span class="name">dog</span><span class="depth">4</span></div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateHTML() missing %q", want)
		}
	}
	if strings.Count(out, "<details") != strings.Count(out, "</details>") {
		t.Error("unbalanced details elements")
	}
}
