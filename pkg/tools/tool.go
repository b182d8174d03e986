// Package tools provides the shared plumbing for MCP tools: a base type,
// the error taxonomy surfaced to callers, and result helpers.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Standard errors for consistent error handling
var (
	ErrInvalidParams = errors.New("invalid parameters")
	ErrInternalError = errors.New("internal server error")
)

// Kind is the failure category of a ToolError. It doubles as the suffix of
// the errors.<tool>.<kind> counter.
type Kind string

const (
	// KindBackend means the catalog call itself failed: network,
	// permission, not found, throttling all land here.
	KindBackend Kind = "aws_call_error"
	// KindEncoding means the result record could not be serialized.
	KindEncoding Kind = "serde_error"
	// KindInvalidParams means a required argument was missing or malformed.
	KindInvalidParams Kind = "invalid_params"
)

// ToolError is the error a tool handler returns. The MCP runtime reports
// every handler error to the caller as a JSON-RPC internal error carrying
// Error(), which is why the payload is rendered into the message. Code is
// for in-process matching and logging only.
type ToolError struct {
	Kind    Kind
	Code    int
	Message string
	Data    map[string]any
	cause   error
}

// NewInternalError wraps cause as an internal error of the given kind.
// The payload carries the cause text verbatim.
func NewInternalError(kind Kind, message string, cause error) *ToolError {
	return &ToolError{
		Kind:    kind,
		Code:    mcp.INTERNAL_ERROR,
		Message: message,
		Data:    map[string]any{"error": cause.Error()},
		cause:   cause,
	}
}

// NewInvalidParamsError reports a bad argument. It has no payload. Code is
// set to mcp.INVALID_PARAMS for errors.Is and logs; on the wire the caller
// still sees an internal error with the argument problem as its message.
func NewInvalidParamsError(cause error) *ToolError {
	return &ToolError{
		Kind:    KindInvalidParams,
		Code:    mcp.INVALID_PARAMS,
		Message: cause.Error(),
		cause:   cause,
	}
}

func (e *ToolError) Error() string {
	if e.Data == nil {
		return e.Message
	}

	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Data)
	}
	return e.Message + ": " + string(data)
}

func (e *ToolError) Unwrap() error {
	return e.cause
}

// Is matches the sentinel errors by code.
func (e *ToolError) Is(target error) bool {
	switch target {
	case ErrInternalError:
		return e.Code == mcp.INTERNAL_ERROR
	case ErrInvalidParams:
		return e.Code == mcp.INVALID_PARAMS
	}
	return false
}

// BaseTool provides common functionality for all tools
type BaseTool struct {
	name   string
	handle mcp.Tool
}

// NewBaseTool creates a new BaseTool with the given name and handle
func NewBaseTool(name string, handle mcp.Tool) *BaseTool {
	return &BaseTool{
		name:   name,
		handle: handle,
	}
}

// Handle returns the MCP Tool definition
func (b *BaseTool) Handle() mcp.Tool {
	return b.handle
}

// Name returns the name of the tool
func (b *BaseTool) Name() string {
	return b.name
}

// Marshal is the encoder tools use for their result records. It is a
// variable so tests can force the encoding failure path.
var Marshal = json.Marshal

// NewJSONResult encodes v and wraps it as a text result.
func NewJSONResult(v any) (*mcp.CallToolResult, error) {
	payload, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
