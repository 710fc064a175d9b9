// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Nexus graph analysis for LLM integration via stdio transport.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/nexus/internal/analysis"
	"github.com/starford/nexus/internal/dot"
)

const contractURI = "nexus://front-matter"

// Server wraps the MCP server with Nexus tools.
type Server struct {
	mcp *server.MCPServer
	svc *analysis.Service
}

// New creates a new MCP server with all Nexus tools registered.
func New(svc *analysis.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Nexus",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("analyze_directory",
		mcp.WithDescription("Build the knowledge graph of a directory of Markdown notes. "+
			"Returns JSON {meta, nodes, links}; file nodes link to the topic of each "+
			"of their tags and topics link to their children. Read the front matter "+
			"contract via get_front_matter_contract first."),
		mcp.WithString("root", mcp.Required(), mcp.Description("Absolute path of the directory to analyze")),
	), s.analyzeDirectory)

	s.mcp.AddTool(mcp.NewTool("open_graph_file",
		mcp.WithDescription("Load a graph file for rendering: .json is returned as is, .dot is converted to {nodes, links}."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of a .json or .dot file")),
	), s.openGraphFile)

	s.mcp.AddTool(mcp.NewTool("convert_dot",
		mcp.WithDescription("Convert Graphviz DOT source to {nodes, links} JSON."),
		mcp.WithString("source", mcp.Required(), mcp.Description("DOT source text")),
	), s.convertDOT)

	s.mcp.AddTool(mcp.NewTool("get_front_matter_contract",
		mcp.WithDescription("Returns the front matter format the analyzer understands."),
	), s.getFrontMatterContract)

	s.mcp.AddResource(
		mcp.NewResource(contractURI, "Front Matter Contract",
			mcp.WithResourceDescription("Front matter fields and tag rules used by graph analysis."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readContractResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) analyzeDirectory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := req.RequireString("root")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.svc.Analyze(ctx, root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) openGraphFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.svc.Open(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) convertDOT(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := dot.Convert([]byte(src))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) getFrontMatterContract(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FrontMatterContract), nil
}

func (s *Server) readContractResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      contractURI,
			MIMEType: "text/markdown",
			Text:     FrontMatterContract,
		},
	}, nil
}
