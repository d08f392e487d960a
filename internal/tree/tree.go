// Package tree renders an is-a hierarchy as indented text or a collapsible HTML page.
package tree

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/matsen/lcs/internal/concept"
)

// Source is the read side of an ontology needed to rebuild its hierarchy.
type Source interface {
	AllConcepts() ([]string, error)
	Concept(name string) (*concept.Concept, error)
}

// Node is a concept with its children, in enumeration order.
type Node struct {
	Concept  *concept.Concept
	Depth    int
	Children []*Node
}

// Build links every concept in src under its parent and returns the root node.
func Build(src Source) (*Node, error) {
	names, err := src.AllConcepts()
	if err != nil {
		return nil, fmt.Errorf("listing concepts: %w", err)
	}

	nodes := make(map[string]*Node, len(names))
	var root *Node
	for _, name := range names {
		c, err := src.Concept(name)
		if err != nil {
			return nil, err
		}
		nodes[name] = &Node{Concept: c}
		if c.IsRoot() {
			root = nodes[name]
		}
	}
	if root == nil {
		return nil, fmt.Errorf("no root among %d concepts", len(names))
	}

	for _, name := range names {
		n := nodes[name]
		if n == root {
			continue
		}
		parent, ok := nodes[n.Concept.Parent]
		if !ok {
			return nil, fmt.Errorf("%s: parent %q not found", name, n.Concept.Parent)
		}
		parent.Children = append(parent.Children, n)
	}

	setDepth(root, 1)
	return root, nil
}

func setDepth(n *Node, depth int) {
	n.Depth = depth
	for _, c := range n.Children {
		setDepth(c, depth+1)
	}
}

// Walk visits n and its descendants in preorder.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// WriteText writes one concept per line, indented two spaces per level.
func WriteText(w io.Writer, root *Node) error {
	var err error
	root.Walk(func(n *Node) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", n.Depth-1), n.Concept.Name)
	})
	return err
}

// HTML template parts
const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
  body { font-family: -apple-system, system-ui, sans-serif; margin: 2rem; background: #fafafa; }
  details { margin-left: 1.5rem; }
  summary { cursor: pointer; padding: 0.3rem 0.5rem; border-radius: 4px; list-style: none; }
  summary:hover { background: #e8e8e8; }
  summary::-webkit-details-marker { display: none; }
  summary::before { content: "▶ "; font-size: 0.7em; color: #666; }
  details[open] > summary::before { content: "▼ "; }
  .leaf { margin-left: 1.5rem; padding: 0.3rem 0.5rem; }
  .leaf::before { content: "• "; font-size: 0.7em; color: #666; }
  .depth { color: #666; font-size: 0.85em; margin-left: 0.5rem; }
  .root { margin-left: 0; }
</style>
</head>
<body>
`

const htmlFooter = `
<script>
document.addEventListener('keydown', e => {
  if (e.key === 'c') document.querySelectorAll('details').forEach(d => d.open = false);
  if (e.key === 'e') document.querySelectorAll('details').forEach(d => d.open = true);
});
</script>
</body>
</html>
`

// RenderNode renders n and its descendants as nested details elements.
func RenderNode(n *Node) string {
	var sb strings.Builder
	renderNode(&sb, n)
	return sb.String()
}

func renderNode(sb *strings.Builder, n *Node) {
	titleAttr := ""
	if n.Concept.Description != "" {
		titleAttr = fmt.Sprintf(` title="%s"`, html.EscapeString(n.Concept.Description))
	}
	label := fmt.Sprintf(`<span class="name">%s</span><span class="depth">%d</span>`,
		html.EscapeString(n.Concept.Name), n.Depth)

	if len(n.Children) == 0 {
		fmt.Fprintf(sb, `<div class="leaf"%s>%s</div>`, titleAttr, label)
		return
	}

	classAttr := ""
	if n.Depth == 1 {
		classAttr = ` class="root"`
	}
	fmt.Fprintf(sb, "<details%s open><summary%s>%s</summary>", classAttr, titleAttr, label)
	for _, c := range n.Children {
		renderNode(sb, c)
	}
	sb.WriteString("</details>")
}

// GenerateHTML renders the full HTML document for a hierarchy.
func GenerateHTML(title string, root *Node) string {
	return fmt.Sprintf(htmlHeader, html.EscapeString(title)) + RenderNode(root) + htmlFooter
}
