package mcpserver

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// argsMap extracts the arguments map from a tool call request. It returns an
// empty map if arguments are nil or not a map.
func argsMap(request mcp.CallToolRequest) map[string]any {
	if request.Params.Arguments != nil {
		if m, ok := request.Params.Arguments.(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

// stringParam returns the string argument key and whether it was present as
// a string.
func stringParam(args map[string]any, key string) (string, bool) {
	val, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// marshalResult encodes data as the JSON text of a tool result.
func marshalResult(data any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error())
	}
	return mcp.NewToolResultText(string(jsonData))
}
