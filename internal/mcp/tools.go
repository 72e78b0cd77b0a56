package mcp

import "github.com/mark3labs/mcp-go/mcp"

var langOption = mcp.WithString("lang",
	mcp.Description("Response language (default en)"),
	mcp.Enum("en", "zh-TW", "zh-CN", "es"),
)

// searchResourcesTool defines the search_resources MCP tool.
var searchResourcesTool = mcp.NewTool("search_resources",
	mcp.WithDescription("Search the verified California support directory by name, type, region or description."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Keywords, e.g. 'shelter', 'legal', 'Oakland'"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
	langOption,
)

// listCategoriesTool defines the list_resource_categories MCP tool.
var listCategoriesTool = mcp.NewTool("list_resource_categories",
	mcp.WithDescription("List the directory categories with a one-line description and the number of organizations in each."),
	langOption,
)

// listByCategoryTool defines the list_resources_by_category MCP tool.
var listByCategoryTool = mcp.NewTool("list_resources_by_category",
	mcp.WithDescription("List every organization in one directory category."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description("Category type"),
		mcp.Enum("Chinese Services", "Shelter", "Food Bank", "Legal Aid", "Mental Health", "Domestic Violence"),
	),
	langOption,
)

// askAssistantTool defines the ask_resource_assistant MCP tool.
var askAssistantTool = mcp.NewTool("ask_resource_assistant",
	mcp.WithDescription("Ask the AI resource assistant for help finding services near a location."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("What the person needs"),
	),
	mcp.WithString("location",
		mcp.Description("City or region in California"),
	),
)
