package core

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

/*
Tool is a single catalog operation exposed to a calling agent. Handle
describes it to the MCP runtime, Handler executes one invocation.
*/
type Tool interface {
	Name() string
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
