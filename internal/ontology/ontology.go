// Package ontology provides an in-memory, single-rooted is-a hierarchy.
package ontology

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matsen/lcs/internal/concept"
)

// Structural errors returned by New.
var (
	ErrEmpty         = errors.New("ontology has no concepts")
	ErrDuplicateName = errors.New("concept with this name already exists")
	ErrNoRoot        = errors.New("ontology has no root concept")
	ErrMultipleRoots = errors.New("ontology has more than one root concept")
	ErrUnknownParent = errors.New("parent concept not found")
	ErrCycle         = errors.New("concept hierarchy contains a cycle")
)

// Ontology is an immutable tree of concepts.
// Each concept has exactly one path to the root.
type Ontology struct {
	order  []string
	byName map[string]*concept.Concept
	paths  map[string][]*concept.Concept // leaf-first, includes the concept itself
	root   *concept.Concept
}

// New validates the given concepts and builds an ontology from them.
// Enumeration order follows the input order.
func New(concepts []concept.Concept) (*Ontology, error) {
	if len(concepts) == 0 {
		return nil, ErrEmpty
	}

	o := &Ontology{
		order:  make([]string, 0, len(concepts)),
		byName: make(map[string]*concept.Concept, len(concepts)),
		paths:  make(map[string][]*concept.Concept, len(concepts)),
	}

	for i := range concepts {
		c := concepts[i]
		if err := c.ValidateForCreate(); err != nil {
			return nil, fmt.Errorf("invalid concept %q: %w", c.Name, err)
		}
		if _, exists := o.byName[c.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, c.Name)
		}
		if c.IsRoot() {
			if o.root != nil {
				return nil, fmt.Errorf("%w: %s and %s", ErrMultipleRoots, o.root.Name, c.Name)
			}
			o.root = &c
		}
		o.byName[c.Name] = &c
		o.order = append(o.order, c.Name)
	}

	if o.root == nil {
		return nil, ErrNoRoot
	}

	for _, name := range o.order {
		c := o.byName[name]
		if !c.IsRoot() {
			if _, ok := o.byName[c.Parent]; !ok {
				return nil, fmt.Errorf("%w: %s (parent of %s)", ErrUnknownParent, c.Parent, c.Name)
			}
		}
	}

	for _, name := range o.order {
		if _, err := o.buildPath(name); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// buildPath computes and memoizes the leaf-first path of the named concept.
func (o *Ontology) buildPath(name string) ([]*concept.Concept, error) {
	if p, ok := o.paths[name]; ok {
		return p, nil
	}

	// Walk up until we reach the root or a concept whose path is already known.
	var chain []*concept.Concept
	seen := make(map[string]bool)
	cur := o.byName[name]
	var tail []*concept.Concept
	for {
		if p, ok := o.paths[cur.Name]; ok {
			tail = p
			break
		}
		if seen[cur.Name] {
			return nil, fmt.Errorf("%w: through %s", ErrCycle, cur.Name)
		}
		seen[cur.Name] = true
		chain = append(chain, cur)
		if cur.IsRoot() {
			break
		}
		cur = o.byName[cur.Parent]
	}

	// Fill in memoized paths from the top of the chain downward.
	for i := len(chain) - 1; i >= 0; i-- {
		p := make([]*concept.Concept, 0, len(tail)+1)
		p = append(p, chain[i])
		p = append(p, tail...)
		o.paths[chain[i].Name] = p
		tail = p
	}

	return o.paths[name], nil
}

// Concept looks up a concept by name.
// Returns an error wrapping concept.ErrConceptNotFound if the name is unknown.
func (o *Ontology) Concept(name string) (*concept.Concept, error) {
	c, ok := o.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", concept.ErrConceptNotFound, name)
	}
	return c, nil
}

// AllConcepts returns every concept name in load order.
func (o *Ontology) AllConcepts() ([]string, error) {
	return slices.Clone(o.order), nil
}

// Concepts returns every concept in load order.
func (o *Ontology) Concepts() []concept.Concept {
	out := make([]concept.Concept, len(o.order))
	for i, name := range o.order {
		out[i] = *o.byName[name]
	}
	return out
}

// PathToTop returns the path from c up to the root, nearest first.
// The returned slice is a copy and may be modified by the caller.
func (o *Ontology) PathToTop(c *concept.Concept) ([]*concept.Concept, error) {
	p, err := o.path(c)
	if err != nil {
		return nil, err
	}
	return slices.Clone(p), nil
}

// Subsumes reports whether a is an ancestor of, or equal to, b.
func (o *Ontology) Subsumes(a, b *concept.Concept) (bool, error) {
	pa, err := o.path(a)
	if err != nil {
		return false, err
	}
	pb, err := o.path(b)
	if err != nil {
		return false, err
	}
	// In a tree, the only candidate at a's depth on b's path sits len(pa) from the root.
	if len(pa) > len(pb) {
		return false, nil
	}
	return pb[len(pb)-len(pa)].Name == a.Name, nil
}

// Depth returns the number of concepts on c's path to the root, inclusive.
func (o *Ontology) Depth(c *concept.Concept) (int, error) {
	p, err := o.path(c)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// Root returns the root concept.
func (o *Ontology) Root() *concept.Concept {
	return o.root
}

// Len returns the number of concepts.
func (o *Ontology) Len() int {
	return len(o.order)
}

func (o *Ontology) path(c *concept.Concept) ([]*concept.Concept, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: <nil>", concept.ErrConceptNotFound)
	}
	p, ok := o.paths[c.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", concept.ErrConceptNotFound, c.Name)
	}
	return p, nil
}
