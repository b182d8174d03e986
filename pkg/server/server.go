// Package server assembles the MCP server for the Glue catalog tools and
// hosts it over HTTP/SSE.
package server

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/theapemachine/mcp-server-glue-catalog/core"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools"
)

const (
	// Name is reported to clients during initialization.
	Name = "glue-mcp"
	// ProtocolVersion is the MCP revision the server was built against.
	ProtocolVersion = "2024-11-05"
	// Instructions describes the server to the calling agent.
	Instructions = "This server provides a glue data catalog tool that can be used to get database and table metadata from an AWS Glue Data Catalog"
)

// Version is set at build time with -ldflags "-X .../pkg/server.Version=...".
var Version = "dev"

// Options controls what the server advertises.
type Options struct {
	// DemoSurface additionally registers the example resources and the echo prompt.
	DemoSurface bool
}

// Server is the MCP server plus the registry of tools it exposes.
type Server struct {
	mcp      *mcpsrv.MCPServer
	registry *ToolRegistry
}

// New builds the MCP server and registers every tool in order.
func New(toolset []core.Tool, opts Options) *Server {
	serverOpts := []mcpsrv.ServerOption{
		mcpsrv.WithToolCapabilities(false),
		mcpsrv.WithInstructions(Instructions),
		mcpsrv.WithRecovery(),
		mcpsrv.WithHooks(hooks()),
	}
	if opts.DemoSurface {
		serverOpts = append(serverOpts,
			mcpsrv.WithResourceCapabilities(false, false),
			mcpsrv.WithPromptCapabilities(false),
		)
	}

	s := &Server{
		mcp: mcpsrv.NewMCPServer(Name, Version, serverOpts...),
	}
	s.registry = NewToolRegistry(s.mcp)

	for _, tool := range toolset {
		s.registry.RegisterTool(tool)
	}

	if opts.DemoSurface {
		s.registerResources()
		s.registerPrompts()
	}

	log.Info("MCP server ready", "name", Name, "version", Version, "tools", s.registry.Names(), "demo", opts.DemoSurface)
	return s
}

// MCP returns the underlying mcp-go server.
func (s *Server) MCP() *mcpsrv.MCPServer {
	return s.mcp
}

// Registry returns the tool registry.
func (s *Server) Registry() *ToolRegistry {
	return s.registry
}

// ToolRegistry manages tool registration. Registration order is kept so
// listings are stable.
type ToolRegistry struct {
	server *mcpsrv.MCPServer
	order  []string
	tools  map[string]core.Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *mcpsrv.MCPServer) *ToolRegistry {
	return &ToolRegistry{
		server: mcpServer,
		tools:  make(map[string]core.Tool),
	}
}

// RegisterTool registers a tool with the server. Registering a name twice
// replaces the handler but keeps the original position.
func (r *ToolRegistry) RegisterTool(tool core.Tool) {
	name := tool.Name()
	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	}
	r.tools[name] = tool
	r.server.AddTool(tool.Handle(), tool.Handler)
}

// Get looks a tool up by name.
func (r *ToolRegistry) Get(name string) (core.Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Names returns the registered tool names in registration order.
func (r *ToolRegistry) Names() []string {
	return append([]string(nil), r.order...)
}

// hooks pins the negotiated protocol version to ProtocolVersion and logs
// every failed request.
func hooks() *mcpsrv.Hooks {
	h := &mcpsrv.Hooks{}
	h.AddAfterInitialize(func(_ context.Context, _ any, _ *mcp.InitializeRequest, result *mcp.InitializeResult) {
		result.ProtocolVersion = ProtocolVersion
	})
	h.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		code := mcp.INTERNAL_ERROR
		var toolErr *tools.ToolError
		if errors.As(err, &toolErr) {
			code = toolErr.Code
		}
		log.Debug("Request failed", "method", method, "id", id, "code", code, "error", err)
	})
	return h
}
