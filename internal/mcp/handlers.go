package mcp

import (
	"encoding/json"
	"fmt"
	"time"

	"flowhealth/internal/flow"
	"flowhealth/internal/jira"
	"flowhealth/internal/scorecard"
)

func (s *Server) handleGenerateScorecard(args json.RawMessage) (interface{}, error) {
	var in struct {
		Issues []jira.IssueDTO `json:"issues"`
		Anchor string          `json:"anchor"`
		Seed   *int64          `json:"seed"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	anchor := time.Now().UTC()
	if in.Anchor != "" {
		t, ok := flow.ParseTimestamp(in.Anchor)
		if !ok {
			return nil, fmt.Errorf("invalid anchor timestamp: %s", in.Anchor)
		}
		anchor = t
	}

	arrivals, completions, excl := jira.MapIssues(jira.SearchResponse{Issues: in.Issues})

	params := s.cfg.Params
	if in.Seed != nil {
		params.Seed = *in.Seed
	}

	return scorecard.Analyze(scorecard.Input{
		Arrivals:    arrivals,
		Completions: completions,
		Exclusions:  excl,
	}, s.cfg.Workflow, params, anchor)
}

func (s *Server) handleReconstructTransitions(args json.RawMessage) (interface{}, error) {
	var in struct {
		Issue jira.IssueDTO `json:"issue"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	var excl flow.Exclusions
	wi, ok := jira.MapIssue(in.Issue, &excl)
	if !ok {
		return nil, fmt.Errorf("issue %s has no usable creation timestamp", in.Issue.Key)
	}

	wf := s.cfg.Workflow
	trs := flow.ReconstructTransitions(wi.Created, wi.StatusEvents, wf.CycleStartStatus, wf.CycleEndStatus)

	type transitionView struct {
		FromStage     string  `json:"from_stage"`
		ToStage       string  `json:"to_stage"`
		DurationHours float64 `json:"duration_hours"`
		OccurredAt    string  `json:"occurred_at"`
	}
	views := make([]transitionView, len(trs))
	for i, tr := range trs {
		views[i] = transitionView{
			FromStage:     tr.FromStage,
			ToStage:       tr.ToStage,
			DurationHours: tr.Duration.Hours(),
			OccurredAt:    tr.OccurredAt.Format(time.RFC3339),
		}
	}

	return map[string]interface{}{
		"key":              wi.Key,
		"transitions":      views,
		"cycle_time_hours": flow.CycleTime(trs, wf.CycleStartStatus).Hours(),
		"events_skipped":   excl.EventsSkipped,
	}, nil
}
