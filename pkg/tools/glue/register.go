package glue

import (
	"github.com/theapemachine/mcp-server-glue-catalog/core"
	"github.com/theapemachine/mcp-server-glue-catalog/pkg/metrics"
)

// RegisterGlueTools returns the catalog tools in the order they are listed to callers.
func RegisterGlueTools(c Catalog, rec metrics.Recorder) []core.Tool {
	if rec == nil {
		rec = metrics.Nop{}
	}

	return []core.Tool{
		NewListDatabasesTool(c, rec),
		NewGetDatabaseMetadataTool(c, rec),
		NewGetTableMetadataTool(c, rec),
	}
}
