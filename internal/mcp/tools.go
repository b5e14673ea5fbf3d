package mcp

import "github.com/google/jsonschema-go/jsonschema"

// toolDecl is one entry of the tools/list response.
type toolDecl struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []toolDecl{
			{
				Name: "generate_scorecard",
				Description: "Compute the full flow-health scorecard over the last four weekly periods: " +
					"arrivals/completions/net flow per week, bootstrap net-flow signal, EWMA trend, " +
					"CUSUM shift detection, volatility, flow debt, segmentation, ownership metrics, " +
					"and the alert checklist. Input is a Jira-shaped search payload.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"issues": {
							Type:        "array",
							Description: "Jira search issues array including changelog histories",
							Items:       &jsonschema.Schema{Type: "object"},
						},
						"anchor": {
							Type:        "string",
							Description: "Optional RFC3339 anchor for the newest period; defaults to now",
						},
						"seed": {
							Type:        "integer",
							Description: "Optional bootstrap seed override for reproducible runs",
						},
					},
					Required: []string{"issues"},
				},
			},
			{
				Name: "reconstruct_transitions",
				Description: "Rebuild one item's per-stage journey from its status changelog: " +
					"ordered stage transitions with durations, restricted to the configured cycle window.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"issue": {
							Type:        "object",
							Description: "One Jira issue object including its changelog",
						},
					},
					Required: []string{"issue"},
				},
			},
		},
	}
}
