package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"flowhealth/internal/jira"
)

type GeneratorConfig struct {
	Scenario     string
	Distribution string // "uniform" or "weibull"
	Count        int
	Seed         int64
	Now          time.Time
}

var (
	statuses  = []string{"To Do", "In Progress", "Code Review", "Testing", "Done"}
	assignees = []string{"Avery Chen", "Sam Okafor", "Riley Novak", "Jordan Iyer"}
	issueTypes = []string{"Story", "Bug", "Task"}

	// Fraction of total duration at which each status is entered.
	stageMarks = []float64{0, 0.10, 0.55, 0.70, 1.0}
)

const timeLayout = "2006-01-02T15:04:05.000-0700"

// Generate produces a Jira-shaped search response spanning roughly six
// weeks ending at Now, so a four-period rolling analysis has history on
// both sides.
func Generate(cfg GeneratorConfig) jira.SearchResponse {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var resp jira.SearchResponse
	span := 42.0 // days of arrivals
	for i := 0; i < cfg.Count; i++ {
		key := fmt.Sprintf("FLOWTEST-%d", i+1)
		arrival := cfg.Now.AddDate(0, 0, -int(span)).
			Add(time.Duration(float64(i) / float64(cfg.Count) * span * 24 * float64(time.Hour)))

		// 1. Total cycle time in days
		var totalDays float64
		if cfg.Distribution == "weibull" {
			k, lambda := 2.5, 9.5
			switch cfg.Scenario {
			case "chaos":
				k, lambda = 0.8, 12.0
			case "drift":
				ratio := float64(i) / float64(cfg.Count)
				k = 2.5 - 1.7*ratio
				lambda = 9.5 + 2.5*ratio
			}
			totalDays = weibullSample(rng, k, lambda)
		} else {
			totalDays = 4.0 + rng.Float64()*6.0
			if cfg.Scenario == "chaos" && rng.Float64() < 0.2 {
				totalDays += 10 + rng.Float64()*15
			}
			if cfg.Scenario == "drift" && i > cfg.Count/2 {
				totalDays *= 2.0
			}
		}

		// 2. Walk the stages up to the item's current age
		_ = cfg.Now.Sub(arrival).Hours() / 24.0
		issue := jira.IssueDTO{Key: key, Changelog: &jira.ChangelogDTO{}}
		issue.Fields.IssueType.Name = issueTypes[rng.Intn(len(issueTypes))]
		issue.Fields.Created = arrival.Format(timeLayout)
		issue.Fields.Status.Name = "To Do"

		for s := 1; s < len(statuses); s++ {
			enter := arrival.Add(time.Duration(stageMarks[s] * totalDays * 24 * float64(time.Hour)))
			if enter.After(cfg.Now) {
				break
			}
			issue.Changelog.Histories = append(issue.Changelog.Histories, jira.HistoryDTO{
				Created: enter.Format(timeLayout),
				Items: []jira.ItemDTO{{
					Field:      "status",
					FromString: statuses[s-1],
					ToString:   statuses[s],
				}},
			})
			issue.Fields.Status.Name = statuses[s]
			if statuses[s] == "Done" {
				issue.Fields.Resolution.Name = "Fixed"
				issue.Fields.ResolutionDate = enter.Format(timeLayout)
			}
		}

		// 3. Assignment: picked up shortly after arrival, sometimes handed off
		owner := assignees[rng.Intn(len(assignees))]
		assignedAt := arrival.Add(time.Duration(rng.Float64() * 8 * float64(time.Hour)))
		if assignedAt.Before(cfg.Now) {
			issue.Changelog.Histories = append(issue.Changelog.Histories, jira.HistoryDTO{
				Created: assignedAt.Format(timeLayout),
				Items:   []jira.ItemDTO{{Field: "assignee", ToString: owner}},
			})
			issue.Fields.Assignee.DisplayName = owner
			if cfg.Scenario == "chaos" && rng.Float64() < 0.4 {
				next := assignees[rng.Intn(len(assignees))]
				handoff := assignedAt.Add(time.Duration(totalDays * 0.3 * 24 * float64(time.Hour)))
				if handoff.Before(cfg.Now) {
					issue.Changelog.Histories = append(issue.Changelog.Histories, jira.HistoryDTO{
						Created: handoff.Format(timeLayout),
						Items:   []jira.ItemDTO{{Field: "assignee", FromString: owner, ToString: next}},
					})
					issue.Fields.Assignee.DisplayName = next
				}
			}
		}

		resp.Issues = append(resp.Issues, issue)
	}
	resp.Total = len(resp.Issues)
	return resp
}

func weibullSample(rng *rand.Rand, k, lambda float64) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.0001
	}
	// X = lambda * (-ln(1-u))^(1/k)
	return lambda * math.Pow(-math.Log(1.0-u), 1.0/k)
}

// Save writes the search response where the scorecard command can read it.
func Save(outDir, sourceID string, resp jira.SearchResponse) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(outDir, fmt.Sprintf("%s.json", sourceID)))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
