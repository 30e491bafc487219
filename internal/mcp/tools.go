package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/resiliency/internal/catalog"
	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/greenpath"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

// Tool handlers return their payload as untyped output so the SDK skips
// output schema inference for the nested view types.
type toolHandler[In any] = sdkmcp.ToolHandlerFor[In, any]

func registerTools(server *sdkmcp.Server, services Services) {
	c := services.Catalog
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "filter_technologies",
		Description: "Filter and sort the technology catalog. Returns matching records with derived cost and efficiency values, the options still available and a shareable link.",
	}, filterTechnologiesHandler(c))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_technology",
		Description: "Get one technology record by id with its derived values.",
	}, getTechnologyHandler(c))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_technologies",
		Description: "Full-text search over technology, vendor, installation, descriptions and capability tags.",
	}, searchTechnologiesHandler(c))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_filter_options",
		Description: "List every distinct installation, technology, vendor, status, capability tag and the cost scale.",
	}, listFilterOptionsHandler(c))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_link",
		Description: "Build the shareable dashboard link that reproduces a filter state.",
	}, generateLinkHandler(c))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_installations",
		Description: "Overview of every installation: existing score, gap to green, gap level and technology count.",
	}, listInstallationsHandler(c))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "gap_to_green",
		Description: "Greedy plan of technologies that closes an installation's gap to the green threshold.",
	}, gapToGreenHandler(c))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "map_markers",
		Description: "Map markers per installation, highlighted by the installation filter.",
	}, mapMarkersHandler(c))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "analytics_summary",
		Description: "Synthetic financial and readiness analytics for the filtered records: averages, distributions and the top records for a radar chart.",
	}, analyticsSummaryHandler(c))

	if services.Notes != nil {
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "get_note",
			Description: "Read the viewer's note on a record. A missing note is empty text.",
		}, getNoteHandler(services.Notes))
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "save_note",
			Description: "Save the viewer's note on a record, replacing any previous text.",
		}, saveNoteHandler(services.Notes))
	}
}

func filterTechnologiesHandler(c CatalogService) toolHandler[FilterTechnologiesInput] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in FilterTechnologiesInput) (*sdkmcp.CallToolResult, any, error) {
		key, err := technology.ParseSortKey(in.Sort)
		if err != nil {
			return nil, nil, toolError(fmt.Errorf("%w: %q", err, in.Sort))
		}
		return nil, c.Filter(catalog.Query{
			Filters: in.Filters.State(),
			Sort:    key,
			Dir:     technology.ParseDirection(in.Dir),
		}), nil
	}
}

func getTechnologyHandler(c CatalogService) toolHandler[GetTechnologyInput] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in GetTechnologyInput) (*sdkmcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.ID) == "" {
			return nil, nil, toolError(fmt.Errorf("%w: id", errMissingArgument))
		}
		view, err := c.Get(in.ID)
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, view, nil
	}
}

func searchTechnologiesHandler(c CatalogService) toolHandler[SearchTechnologiesInput] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchTechnologiesInput) (*sdkmcp.CallToolResult, any, error) {
		results, err := c.Search(ctx, in.Query, in.Limit)
		if err != nil {
			return nil, nil, toolError(err)
		}
		if results == nil {
			results = []catalog.SearchResult{}
		}
		return nil, map[string]any{"results": results}, nil
	}
}

func listFilterOptionsHandler(c CatalogService) toolHandler[ListFilterOptionsInput] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ ListFilterOptionsInput) (*sdkmcp.CallToolResult, any, error) {
		return nil, c.FilterOptions(), nil
	}
}

func generateLinkHandler(c CatalogService) toolHandler[GenerateLinkInput] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in GenerateLinkInput) (*sdkmcp.CallToolResult, any, error) {
		state := in.Filters.State()
		return nil, LinkResult{Link: c.Link(state), Query: filter.Encode(state)}, nil
	}
}

func listInstallationsHandler(c CatalogService) toolHandler[ListInstallationsInput] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in ListInstallationsInput) (*sdkmcp.CallToolResult, any, error) {
		key, err := greenpath.ParseSummaryKey(in.Sort)
		if err != nil {
			return nil, nil, toolError(err)
		}
		summaries := c.Installations(key, technology.ParseDirection(in.Dir))
		return nil, map[string]any{"installations": summaries}, nil
	}
}

func gapToGreenHandler(c CatalogService) toolHandler[GapToGreenInput] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in GapToGreenInput) (*sdkmcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Installation) == "" {
			return nil, nil, toolError(fmt.Errorf("%w: installation", errMissingArgument))
		}
		var key greenpath.RecommendationKey
		if in.Sort != "" {
			parsed, err := greenpath.ParseRecommendationKey(in.Sort)
			if err != nil {
				return nil, nil, toolError(err)
			}
			key = parsed
		}
		plan, err := c.GapToGreen(in.Installation, key, technology.ParseDirection(in.Dir))
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, plan, nil
	}
}

func mapMarkersHandler(c CatalogService) toolHandler[MapMarkersInput] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in MapMarkersInput) (*sdkmcp.CallToolResult, any, error) {
		return nil, map[string]any{"markers": c.Markers(in.Filters.State())}, nil
	}
}

func analyticsSummaryHandler(c CatalogService) toolHandler[AnalyticsSummaryInput] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in AnalyticsSummaryInput) (*sdkmcp.CallToolResult, any, error) {
		return nil, c.Analytics(in.Filters.State()), nil
	}
}

func getNoteHandler(n NoteService) toolHandler[GetNoteInput] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetNoteInput) (*sdkmcp.CallToolResult, any, error) {
		note, err := n.GetNote(ctx, getClientID(ctx), in.ID)
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, note, nil
	}
}

func saveNoteHandler(n NoteService) toolHandler[SaveNoteInput] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveNoteInput) (*sdkmcp.CallToolResult, any, error) {
		note, err := n.SaveNote(ctx, getClientID(ctx), in.ID, in.Text)
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, note, nil
	}
}
