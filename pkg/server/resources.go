package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/theapemachine/mcp-server-glue-catalog/pkg/catalog"
)

const (
	infoURI         = "glue://server/info"
	schemaURIPrefix = "glue://schemas/"
)

// recordSchemas maps each result record to the resource name its schema is served under.
var recordSchemas = []struct {
	name   string
	record any
}{
	{"database_list", &catalog.DatabaseList{}},
	{"database_metadata", &catalog.DatabaseMetadata{}},
	{"table_metadata", &catalog.TableMetadata{}},
}

// serverInfo is the body of the glue://server/info resource.
type serverInfo struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	ProtocolVersion string   `json:"protocol_version"`
	Instructions    string   `json:"instructions"`
	Tools           []string `json:"tools"`
}

func (s *Server) registerResources() {
	s.mcp.AddResource(
		mcp.NewResource(
			infoURI,
			"Server info",
			mcp.WithResourceDescription("Static description of this server and the tools it exposes"),
			mcp.WithMIMEType("application/json"),
		),
		s.readInfo,
	)

	reflector := &jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
	for _, rs := range recordSchemas {
		uri := schemaURIPrefix + rs.name
		schema := reflector.Reflect(rs.record)

		s.mcp.AddResource(
			mcp.NewResource(
				uri,
				rs.name+" schema",
				mcp.WithResourceDescription(fmt.Sprintf("JSON schema of the %s result record", rs.name)),
				mcp.WithMIMEType("application/schema+json"),
			),
			jsonResource(uri, "application/schema+json", schema),
		)
	}
}

func (s *Server) readInfo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(infoURI, "application/json", serverInfo{
		Name:            Name,
		Version:         Version,
		ProtocolVersion: ProtocolVersion,
		Instructions:    Instructions,
		Tools:           s.registry.Names(),
	})(ctx, request)
}

func jsonResource(uri, mimeType string, v any) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		body, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", uri, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: mimeType,
				Text:     string(body),
			},
		}, nil
	}
}
