package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/directory"
	"github.com/voicethroughimage/vti/internal/i18n"
)

func requestLang(request mcp.CallToolRequest) i18n.Lang {
	if l, ok := i18n.Parse(request.GetString("lang", "")); ok {
		return l
	}
	return i18n.EN
}

// withDynamic appends the community-submitted resources of one type.
func (s *Server) withDynamic(ctx context.Context, t content.ResourceType, rs []content.Resource) []content.Resource {
	if s.library == nil {
		return rs
	}
	return append(rs, s.library.DynamicResources(ctx, s.fb, t)...)
}

// handleSearchResources matches the query against the static directory and
// any community entries.
func (s *Server) handleSearchResources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	results := directory.Search(query)
	if s.library != nil {
		stored, _, err := s.library.AdminResources(ctx, s.fb)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("reading community resources: %v", err)), nil
		}
		for _, r := range stored {
			if r.IsDynamic && r.Matches(query) {
				results = append(results, r)
			}
		}
	}
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No resources match %q. Try a broader keyword or list_resource_categories.", query)), nil
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return mcp.NewToolResultText(formatResources(results, requestLang(request))), nil
}

// handleListCategories lists the directory tiles with their counts.
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := requestLang(request)

	var sb strings.Builder
	for _, c := range directory.Categories() {
		n := len(s.withDynamic(ctx, c.ID, directory.ByCategory(c.ID)))
		fmt.Fprintf(&sb, "- %s (%s): %s %s\n", c.Label(l), c.ID, c.Description(l), directory.CountText(l, n))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleListByCategory lists every organization of one category.
func (s *Server) handleListByCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: category"), nil
	}
	c, ok := directory.LookupCategory(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", name)), nil
	}

	rs := s.withDynamic(ctx, c.ID, directory.ByCategory(c.ID))
	if len(rs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No organizations listed under %s yet.", c.ID)), nil
	}
	return mcp.NewToolResultText(formatResources(rs, requestLang(request))), nil
}

// handleAskAssistant forwards a free-form question to the resource
// assistant. Without an API key the assistant answers with its demo text.
func (s *Server) handleAskAssistant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	text := s.assist.ResourceAssistance(ctx, query, request.GetString("location", ""))
	return mcp.NewToolResultText(text), nil
}

// formatResources renders resources as plain text for agent consumption.
func formatResources(rs []content.Resource, l i18n.Lang) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d resource(s):\n", len(rs))

	for i, r := range rs {
		lr := r.Localized(l)
		fmt.Fprintf(&sb, "\n--- %d. %s ---\n", i+1, lr.Name)
		fmt.Fprintf(&sb, "Type: %s\n", lr.TypeLabel)
		if lr.Region != "" {
			fmt.Fprintf(&sb, "Region: %s\n", lr.Region)
		}
		if lr.Location != "" {
			fmt.Fprintf(&sb, "Location: %s\n", lr.Location)
		}
		if lr.Contact != "" {
			fmt.Fprintf(&sb, "Contact: %s\n", lr.Contact)
		}
		if lr.Hours != "" {
			fmt.Fprintf(&sb, "Hours: %s\n", lr.Hours)
		}
		if lr.Website != "" {
			fmt.Fprintf(&sb, "Website: %s\n", lr.Website)
		}
		if lr.IsDynamic {
			sb.WriteString("Source: community submission\n")
		}
		sb.WriteString("\n")
		sb.WriteString(lr.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}
