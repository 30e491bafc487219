package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `resiliency serves a read-only catalog of resiliency technologies fielded at military installations.

Core concepts:
- Record: one technology at one installation, with vendor, status, cost ($K), capability tags (tech needs), gap level and resiliency impact.
- Outreach level: Level 1..Level 4 readiness. Records without an explicit level derive it from status (Prototype 1, Planning 2, Deployment 4, otherwise 3).
- Filter state: installation, technology, vendor, status and tech-needs value sets plus a cost range in percent of the largest cost. An empty set passes everything.
- Gap to green: an installation is green at score 80. The plan picks technologies by impact until the gap is covered.

Workflow:
1) Orient with list_filter_options and list_installations.
2) Narrow with filter_technologies or search_technologies; read one record with get_technology.
3) Plan with gap_to_green for a chosen installation.
4) Share a view with generate_link.

Docs:
- resiliency://docs/filters (filter semantics, sort columns, link format)
- resiliency://docs/gap-to-green (scores, thresholds and the plan)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "resiliency://docs/filters",
		Name:        "docs_filters",
		Title:       "Filters, sorting and links",
		Description: "How filter dimensions combine, which sort columns exist and how shareable links encode state.",
		Content: `# Filters, sorting and links

## Dimensions

- ` + "`installations`" + `, ` + "`technology_types`" + `, ` + "`vendors`" + `: exact names.
- ` + "`statuses`" + `: a record passes when its raw status or its outreach level is selected.
- ` + "`tech_needs`" + `: a record passes when it carries any selected tag.
- ` + "`cost_min`" + ` / ` + "`cost_max`" + `: percentages of the largest cost in the catalog, inclusive.

Dimensions combine with AND; values inside one dimension combine with OR.
An empty dimension passes every record. Unknown values match nothing.

## Sorting

Records: technology, vendor, installation, status (outreach rank), cost, impact,
costPerImpact (records without impact last), gapLevel (High before Medium before Low).
Installations: name, gapToGreen, gapLevel, technologies.
Plans: technology, vendor, status, impact, cost; omit to keep plan order.

## Links

Links carry only non-default dimensions:
` + "`?installation=JBLM,Fort%20Bliss&cost=0,40`" + `. Values are comma separated and
escaped one by one. Unknown parameters are ignored and a malformed cost falls back
to the full range. Pass a link's query string as ` + "`filters.query`" + ` to reuse it.
`,
	},
	{
		URI:         "resiliency://docs/gap-to-green",
		Name:        "docs_gap_to_green",
		Title:       "Gap to green",
		Description: "Installation scores, standing thresholds and how the greedy plan is built.",
		Content: `# Gap to green

- Current score: the existing resiliency score shared by an installation's records;
  50 when none is recorded.
- Target: 80. Gap: max(0, 80 - current).
- Standing: green at 80 and above, yellow from 50, red below.

## Plan

Records are taken in descending impact order and added while the gap is still open.
Each recommendation reports its contribution, capped by the remaining gap.
The plan is achievable when total impact covers the gap.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
