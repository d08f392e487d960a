// Package concept defines the core domain type for nodes of an is-a hierarchy.
package concept

import (
	"errors"
	"regexp"
)

// Concept represents a named node in a taxonomic hierarchy.
type Concept struct {
	Name        string `json:"name"`                  // Required, unique within an ontology
	Parent      string `json:"parent,omitempty"`      // Empty for the root concept
	Description string `json:"description,omitempty"` // Optional, longer explanation
}

// NamePattern is the regex pattern for valid concept names.
// Must start with an alphanumeric, followed by alphanumerics, dots, hyphens, or underscores.
var NamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Validation errors.
var (
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidName     = errors.New("name must match pattern: alphanumeric, dots, hyphens, underscores; must start with alphanumeric")
	ErrInvalidParent   = errors.New("parent must be empty or a valid concept name")
	ErrSelfParent      = errors.New("concept cannot be its own parent")
	ErrConceptNotFound = errors.New("concept not found")
)

// ValidateForCreate validates a concept before it is added to an ontology.
// Returns an error if the name is missing or malformed, or the parent is invalid.
func (c *Concept) ValidateForCreate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if c.Parent != "" && !NamePattern.MatchString(c.Parent) {
		return ErrInvalidParent
	}
	if c.Parent == c.Name {
		return ErrSelfParent
	}
	return nil
}

// ValidateName validates just a name (useful for lookup operations).
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !NamePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// IsRoot reports whether the concept has no parent.
func (c *Concept) IsRoot() bool {
	return c.Parent == ""
}

// Same reports whether two concepts denote the same node.
// Concepts are identified by name; nil is never the same as anything.
func Same(a, b *Concept) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name
}

// String returns the concept name.
func (c *Concept) String() string {
	return c.Name
}
