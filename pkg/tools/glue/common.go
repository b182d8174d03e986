// Package glue exposes the catalog facade as MCP tools.
package glue

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/theapemachine/mcp-server-glue-catalog/pkg/catalog"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/metrics"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/tools"
)

// Catalog is what the tools need from *catalog.Catalog.
type Catalog interface {
	Region() string
	ListDatabases(ctx context.Context) (catalog.DatabaseList, error)
	GetDatabaseMetadata(ctx context.Context, databaseName string) (catalog.DatabaseMetadata, error)
	GetTableMetadata(ctx context.Context, databaseName, tableName string) (catalog.TableMetadata, error)
}

// invocation tracks one tool call for logging and counters.
type invocation struct {
	tool    string
	metrics metrics.Recorder
	logger  *log.Logger
}

// begin starts tracking a call. Nothing is counted until called.
func begin(tool string, rec metrics.Recorder) *invocation {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &invocation{
		tool:    tool,
		metrics: rec,
		logger:  log.With("tool", tool, "call_id", uuid.NewString()),
	}
}

// called records the invocation once its arguments have been accepted.
func (inv *invocation) called() {
	inv.metrics.Inc(metrics.CallName(inv.tool))
}

func (inv *invocation) fail(err *tools.ToolError) (*mcp.CallToolResult, error) {
	inv.metrics.Inc(metrics.ErrorName(inv.tool, string(err.Kind)))
	inv.logger.Error(err.Message, "category", err.Kind, "error", err.Unwrap())
	return nil, err
}

// invalidParams rejects the call before it is counted as an invocation.
func (inv *invocation) invalidParams(err error) (*mcp.CallToolResult, error) {
	return inv.fail(tools.NewInvalidParamsError(err))
}

func (inv *invocation) backend(message string, err error) (*mcp.CallToolResult, error) {
	return inv.fail(tools.NewInternalError(tools.KindBackend, message, err))
}

// respond serializes record. An encoding failure is reported separately
// from a backend failure.
func (inv *invocation) respond(record any) (*mcp.CallToolResult, error) {
	result, err := tools.NewJSONResult(record)
	if err != nil {
		return inv.fail(tools.NewInternalError(tools.KindEncoding, "Failed to serialize result", err))
	}
	return result, nil
}
