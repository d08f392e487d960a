package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matsen/lcs/internal/concept"
	"github.com/matsen/lcs/internal/report"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v any) error {
	return report.WriteJSON(w, v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(os.Stdout, ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// formatPath joins a path-to-top with arrows, nearest concept first.
func formatPath(path []*concept.Concept) string {
	return strings.Join(conceptNames(path), " -> ")
}

// conceptNames extracts the names of a list of concepts.
func conceptNames(path []*concept.Concept) []string {
	names := make([]string, len(path))
	for i, c := range path {
		names[i] = c.Name
	}
	return names
}
