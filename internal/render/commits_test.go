package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

func TestCommitReport(t *testing.T) {
	month := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	days := []schema.DayGroup{
		{
			Date: "2025-04-19",
			Repos: []schema.RepoGroup{
				{
					Repo: "octocat/hotspot",
					URL:  "https://github.com/octocat/hotspot",
					Commits: []schema.CommitRecord{
						{
							ShortSHA:   "abcdef1",
							Author:     "Octo Cat",
							AuthoredAt: time.Date(2025, time.April, 19, 15, 4, 0, 0, time.UTC),
							Message:    "fix flaky pagination",
						},
					},
				},
			},
		},
	}

	out := CommitReport(month, days)

	assert.Contains(t, out, "# GitHub Commits - April 2025")
	assert.Contains(t, out, "## 2025-04-19")
	assert.Contains(t, out, "### [octocat/hotspot](https://github.com/octocat/hotspot)")
	assert.Contains(t, out, "- `abcdef1` fix flaky pagination (Octo Cat, 15:04)")
}

func TestCommitReportEmpty(t *testing.T) {
	month := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	out := CommitReport(month, nil)

	assert.Contains(t, out, "# GitHub Commits - April 2025")
	assert.Contains(t, out, "No commits found for this period.")
}
