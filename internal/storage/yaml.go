package storage

import (
	"fmt"
	"os"

	"github.com/matsen/lcs/internal/concept"
	"gopkg.in/yaml.v3"
)

// YAMLNode is one concept in a nested YAML ontology.
type YAMLNode struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Children    []YAMLNode `yaml:"children,omitempty"`
}

// ReadYAML reads a nested YAML ontology and flattens it in preorder.
// The document's top-level node is the root.
func ReadYAML(path string) ([]concept.Concept, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading yaml file: %w", err)
	}

	var root YAMLNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing yaml file: %w", err)
	}

	var concepts []concept.Concept
	if err := flattenYAML(root, "", &concepts); err != nil {
		return nil, err
	}
	return concepts, nil
}

func flattenYAML(n YAMLNode, parent string, out *[]concept.Concept) error {
	c := concept.Concept{Name: n.Name, Parent: parent, Description: n.Description}
	if err := c.ValidateForCreate(); err != nil {
		return fmt.Errorf("invalid concept %q: %w", n.Name, err)
	}
	*out = append(*out, c)
	for _, child := range n.Children {
		if err := flattenYAML(child, n.Name, out); err != nil {
			return err
		}
	}
	return nil
}
