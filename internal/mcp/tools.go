package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

const categoryHelp = "Category key: motherboard, cpu, ram, gpu, psu, case, cpu_cooler, storage, monitor, keyboard or mouse"

var optionsToolDef = mcp.NewTool("build_options",
	mcp.WithDescription("List the parts of one category classified against the current build: "+
		"available, out of stock, incompatible (with reason) or conflict. "+
		"Filters narrow the list before classification."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("category", mcp.Required(), mcp.Description(categoryHelp)),
	mcp.WithString("search", mcp.Description("Case-insensitive substring of name, brand or model")),
	mcp.WithString("brand", mcp.Description("Exact brand")),
	mcp.WithNumber("min_price", mcp.Description("Lowest price, inclusive"), mcp.Min(0)),
	mcp.WithNumber("max_price", mcp.Description("Highest price, inclusive. Omit for no upper bound"), mcp.Min(0)),
	mcp.WithArray("features",
		mcp.Description("Feature tags; a part matches when any tag overlaps"),
		mcp.WithStringItems(),
	),
	mcp.WithBoolean("include_facets", mcp.Description("Also return the brands, feature tags and max price of the category")),
)

var selectToolDef = mcp.NewTool("build_select",
	mcp.WithDescription("Pick a part for one slot of the build. The part must be available and compatible, "+
		"and every earlier step must be filled. Later slots are cleared."),
	mcp.WithString("category", mcp.Required(), mcp.Description(categoryHelp)),
	mcp.WithString("id", mcp.Required(), mcp.Description("Part id from build_options")),
)

var statusToolDef = mcp.NewTool("build_status",
	mcp.WithDescription("Show the current build: wizard steps, selected parts and total price."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var summaryToolDef = mcp.NewTool("build_summary",
	mcp.WithDescription("Render the current build as a markdown table with the total price."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var clearToolDef = mcp.NewTool("build_clear",
	mcp.WithDescription("Empty every slot of the current build."),
	mcp.WithDestructiveHintAnnotation(true),
)

var catalogToolDef = mcp.NewTool("catalog_info",
	mcp.WithDescription("Show how many parts each category has and any catalog load warnings."),
	mcp.WithReadOnlyHintAnnotation(true),
)
