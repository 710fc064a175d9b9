// Package graph assembles documents and resolved tags into a deduplicated
// node/link graph and serializes it for the renderer.
package graph

import (
	"cmp"
	"slices"

	"github.com/starford/nexus/internal/models"
	"github.com/starford/nexus/internal/tags"
)

// Graph is a set of nodes and links keyed by full value equality.
type Graph struct {
	nodes map[models.Node]struct{}
	links map[models.Link]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[models.Node]struct{}),
		links: make(map[models.Link]struct{}),
	}
}

// AddNode inserts n; inserting an existing node is a no-op.
func (g *Graph) AddNode(n models.Node) {
	g.nodes[n] = struct{}{}
}

// AddLink inserts l; inserting an existing link is a no-op.
func (g *Graph) AddLink(l models.Link) {
	g.links[l] = struct{}{}
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of distinct links.
func (g *Graph) LinkCount() int { return len(g.links) }

// Nodes returns the nodes ordered by id, then kind.
func (g *Graph) Nodes() []models.Node {
	out := make([]models.Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b models.Node) int {
		return cmp.Or(
			cmp.Compare(a.ID, b.ID),
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.Title, b.Title),
		)
	})
	return out
}

// Links returns the links ordered by source, target, then value.
func (g *Graph) Links() []models.Link {
	out := make([]models.Link, 0, len(g.links))
	for l := range g.links {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b models.Link) int {
		return cmp.Or(
			cmp.Compare(a.Source, b.Source),
			cmp.Compare(a.Target, b.Target),
			cmp.Compare(a.Value, b.Value),
		)
	})
	return out
}

// Build resolves the tags of all documents and assembles the graph.
func Build(docs []models.DocumentMeta) *Graph {
	var all []string
	for _, d := range docs {
		all = append(all, d.Tags...)
	}
	return BuildResolved(docs, tags.Resolve(all))
}

// BuildResolved assembles the graph from docs using a precomputed mapping
// from raw tag to absolute topic path.
//
// Ignored documents add no file node and no file links, but their tags still
// shape the topic hierarchy. Every ancestor of a resolved path becomes a
// topic node linked to its child.
func BuildResolved(docs []models.DocumentMeta, resolved map[string]string) *Graph {
	g := New()
	for _, d := range docs {
		if !d.Ignore {
			g.AddNode(models.Node{ID: d.FilePath, Title: d.Title, Kind: models.KindFile})
		}

		for _, tag := range d.Tags {
			p, ok := resolved[tag]
			if !ok {
				p = tags.Separator + tag
			}
			chain := tags.Ancestors(p)
			if len(chain) == 0 {
				continue
			}

			for i, id := range chain {
				segs := tags.Segments(id)
				g.AddNode(models.Node{ID: id, Title: segs[len(segs)-1], Kind: models.KindTopic})
				if i > 0 {
					g.AddLink(models.Link{Source: chain[i-1], Target: id, Value: models.WeightStructural})
				}
			}

			if !d.Ignore {
				g.AddLink(models.Link{
					Source: d.FilePath,
					Target: chain[len(chain)-1],
					Value:  models.WeightAssociation,
				})
			}
		}
	}
	return g
}
