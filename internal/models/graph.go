package models

// NodeKind distinguishes document vertices from topic vertices.
type NodeKind string

const (
	KindFile  NodeKind = "file"
	KindTopic NodeKind = "topic"
)

// Edge strengths understood by the renderer.
const (
	WeightAssociation = 2 // file -> topic
	WeightStructural  = 5 // topic -> topic
)

// Semantics tags the analysis output so consumers can tell producers apart.
const SemanticsMarkdown = "markdown"

// Node is a graph vertex. Nodes compare by value.
type Node struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Kind  NodeKind `json:"kind"`
}

// Link is a directed, weighted graph edge. Links compare by value.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// Meta describes the producer of a serialized graph.
type Meta struct {
	Semantics string `json:"semantics"`
}

// Graph is the serialized form of an analysis result.
type Graph struct {
	Meta  Meta   `json:"meta"`
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}
