package utils

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetStringParam extracts a string argument from a tool call. A required
// argument must be present, a string, and not empty.
func GetStringParam(req mcp.CallToolRequest, key string, required bool) (string, error) {
	val, exists := req.GetArguments()[key]
	if !exists || val == nil {
		if required {
			return "", fmt.Errorf("missing required parameter: '%s'", key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("parameter '%s' must be a string", key)
	}

	if required && str == "" {
		return "", fmt.Errorf("parameter '%s' must not be empty", key)
	}

	return str, nil
}

// GetRequiredStringParam is a shorthand for GetStringParam with required=true
func GetRequiredStringParam(req mcp.CallToolRequest, key string) (string, error) {
	return GetStringParam(req, key, true)
}

// GetRequiredPromptArg extracts a non-empty argument from a prompt request.
func GetRequiredPromptArg(req mcp.GetPromptRequest, key string) (string, error) {
	val, ok := req.Params.Arguments[key]
	if !ok || val == "" {
		return "", fmt.Errorf("missing required argument: '%s'", key)
	}
	return val, nil
}
