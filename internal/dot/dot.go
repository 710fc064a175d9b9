// Package dot converts Graphviz DOT documents into the renderer's
// node/link JSON shape.
package dot

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
)

// Default group and edge weight for converted graphs; DOT carries neither.
const (
	DefaultGroup = 1
	DefaultValue = 1
)

// Node is a converted DOT node.
type Node struct {
	ID    string `json:"id"`
	Group int    `json:"group"`
}

// Link is a converted DOT edge.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// Graph is the converted document.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// ConvertFile reads a DOT file and converts it.
func ConvertFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("dot: read %s: %w", path, err)
	}
	return Convert(data)
}

// Convert parses DOT source and renders it as indented JSON. Nodes and edges
// are deduplicated and sorted so equal inputs give equal output.
func Convert(src []byte) (string, error) {
	g, err := Parse(src)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", fmt.Errorf("dot: serialize: %w", err)
	}
	return string(data), nil
}

// Parse parses DOT source into a Graph.
func Parse(src []byte) (*Graph, error) {
	parsed, err := gographviz.Read(src)
	if err != nil {
		return nil, fmt.Errorf("dot: parse: %w", err)
	}

	ids := make(map[string]struct{})
	for _, n := range parsed.Nodes.Nodes {
		ids[unquote(n.Name)] = struct{}{}
	}

	type edge struct{ src, dst string }
	edges := make(map[edge]struct{})
	for _, e := range parsed.Edges.Edges {
		src, dst := unquote(e.Src), unquote(e.Dst)
		ids[src] = struct{}{}
		ids[dst] = struct{}{}
		edges[edge{src, dst}] = struct{}{}
	}

	out := &Graph{
		Nodes: make([]Node, 0, len(ids)),
		Links: make([]Link, 0, len(edges)),
	}
	for id := range ids {
		out.Nodes = append(out.Nodes, Node{ID: id, Group: DefaultGroup})
	}
	for e := range edges {
		out.Links = append(out.Links, Link{Source: e.src, Target: e.dst, Value: DefaultValue})
	}
	slices.SortFunc(out.Nodes, func(a, b Node) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortFunc(out.Links, func(a, b Link) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.Target, b.Target))
	})
	return out, nil
}

func unquote(id string) string {
	if strings.HasPrefix(id, `"`) {
		if s, err := strconv.Unquote(id); err == nil {
			return s
		}
	}
	return id
}
