package jira

import (
	"github.com/rs/zerolog/log"

	"flowhealth/internal/flow"
)

// MapIssue transforms a Jira DTO into a WorkItem. A missing or unparseable
// creation timestamp makes the item unusable: ok is false and the caller
// should count it as skipped. Unparseable event timestamps only drop the
// single event, tallied in excl.
func MapIssue(item IssueDTO, excl *flow.Exclusions) (flow.WorkItem, bool) {
	created, ok := flow.ParseTimestamp(item.Fields.Created)
	if !ok {
		log.Warn().Str("key", item.Key).Str("created", item.Fields.Created).
			Msg("skipping issue with unparseable creation timestamp")
		excl.ItemsSkipped++
		return flow.WorkItem{}, false
	}

	wi := flow.WorkItem{
		Key:      item.Key,
		Category: item.Fields.IssueType.Name,
		Created:  created,
		Status:   item.Fields.Status.Name,
		Assignee: item.Fields.Assignee.DisplayName,
	}

	if item.Fields.ResolutionDate != "" {
		if t, ok := flow.ParseTimestamp(item.Fields.ResolutionDate); ok {
			wi.Resolved = &t
		} else {
			excl.EventsSkipped++
		}
	}

	if item.Changelog != nil {
		for _, h := range item.Changelog.Histories {
			hDate, ok := flow.ParseTimestamp(h.Created)
			if !ok {
				excl.EventsSkipped++
				continue
			}
			for _, itm := range h.Items {
				switch itm.Field {
				case "status":
					wi.StatusEvents = append(wi.StatusEvents, flow.StatusEvent{
						Date:       hDate,
						FromStatus: itm.FromString,
						ToStatus:   itm.ToString,
					})
				case "assignee":
					wi.AssignmentEvents = append(wi.AssignmentEvents, flow.AssignmentEvent{
						Date:         hDate,
						FromAssignee: itm.FromString,
						ToAssignee:   itm.ToString,
					})
				}
			}
		}
	}
	return wi, true
}

// MapIssues maps a whole search response, partitioning items into arrivals
// (everything with a valid creation time) and completions (the resolved
// subset). Counted exclusions come back alongside.
func MapIssues(resp SearchResponse) ([]flow.WorkItem, []flow.WorkItem, flow.Exclusions) {
	var excl flow.Exclusions
	arrivals := make([]flow.WorkItem, 0, len(resp.Issues))
	var completions []flow.WorkItem
	for _, item := range resp.Issues {
		wi, ok := MapIssue(item, &excl)
		if !ok {
			continue
		}
		arrivals = append(arrivals, wi)
		if wi.Resolved != nil {
			completions = append(completions, wi)
		}
	}
	return arrivals, completions, excl
}
