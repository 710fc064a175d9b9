package graph

import (
	"encoding/json"
	"fmt"

	"github.com/starford/nexus/internal/models"
)

// Serialize renders g as indented JSON of the form
// {"meta": {"semantics": "markdown"}, "nodes": [...], "links": [...]}.
func Serialize(g *Graph) (string, error) {
	out := models.Graph{
		Meta:  models.Meta{Semantics: models.SemanticsMarkdown},
		Nodes: g.Nodes(),
		Links: g.Links(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("graph: serialize: %w", err)
	}
	return string(data), nil
}
