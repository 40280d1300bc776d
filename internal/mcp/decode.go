package mcp

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/rig/internal/errors"
)

// decode converts tool arguments into T. Arguments that do not fit T are an
// INVALID_REQUEST naming the offending field.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var out T

	tool := req.Params.Name
	if tool == "" {
		tool = "arguments"
	}

	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return out, errors.NewInvalidRequest(fmt.Sprintf("%s: arguments are not valid JSON", tool))
	}
	if err := json.Unmarshal(b, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return out, errors.NewInvalidRequest(fmt.Sprintf("%s: %s must be %s, got %s", tool, typeErr.Field, typeErr.Type, typeErr.Value))
		}
		return out, errors.NewInvalidRequest(fmt.Sprintf("%s: %v", tool, err))
	}
	return out, nil
}
