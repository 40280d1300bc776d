package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/rig/internal/errors"
	"github.com/hpungsan/rig/internal/filter"
	"github.com/hpungsan/rig/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	session *ops.Session
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(session *ops.Session) *Handlers {
	return &Handlers{session: session}
}

// Request types for each tool

// OptionsRequest represents the arguments for build_options.
type OptionsRequest struct {
	Category      string   `json:"category"`
	Search        string   `json:"search,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	MinPrice      int      `json:"min_price,omitempty"`
	MaxPrice      int      `json:"max_price,omitempty"`
	Features      []string `json:"features,omitempty"`
	IncludeFacets bool     `json:"include_facets,omitempty"`
}

// SelectRequest represents the arguments for build_select.
type SelectRequest struct {
	Category string `json:"category"`
	ID       string `json:"id"`
}

// Handler implementations

// HandleOptions handles the build_options tool call.
func (h *Handlers) HandleOptions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[OptionsRequest](req)
	if err != nil {
		return errorResult(err), nil
	}
	if input.MinPrice < 0 || input.MaxPrice < 0 {
		return errorResult(errors.NewInvalidRequest("prices must not be negative")), nil
	}

	result, err := h.session.Options(ops.OptionsInput{
		Category: input.Category,
		Criteria: filter.Criteria{
			Search:   input.Search,
			Brand:    input.Brand,
			MinPrice: input.MinPrice,
			MaxPrice: input.MaxPrice,
			Features: input.Features,
		},
		IncludeFacets: input.IncludeFacets,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSelect handles the build_select tool call.
func (h *Handlers) HandleSelect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SelectRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := h.session.Select(ctx, ops.SelectInput{
		Category: input.Category,
		ID:       input.ID,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStatus handles the build_status tool call.
func (h *Handlers) HandleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.session.Status(ctx))
}

// HandleSummary handles the build_summary tool call.
func (h *Handlers) HandleSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.session.Summary())
}

// HandleClear handles the build_clear tool call.
func (h *Handlers) HandleClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.session.Clear(ctx))
}

// HandleCatalog handles the catalog_info tool call.
func (h *Handlers) HandleCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.session.Catalog())
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var rigErr *errors.RigError
	if stderrors.As(err, &rigErr) {
		msg := rigErr.Message
		if err != error(rigErr) {
			// keep the wrapper's context
			msg = err.Error()
		}
		errorObj := map[string]any{
			"code":    rigErr.Code,
			"message": msg,
			"status":  rigErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if rigErr.Code != errors.ErrInternal && rigErr.Details != nil {
			errorObj["details"] = rigErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
