package core

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/artifact"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/render"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// ExecuteCommits generates the current month's commit-history report, keyed
// by the generation date. Search runs first; the enumeration fallback runs
// only when search yields zero commits, and the two result sets are never
// merged.
func ExecuteCommits(ctx context.Context, svc contract.CommitService, store *artifact.Store, now time.Time) error {
	if err := store.EnsureDir(schema.CommitCategory); err != nil {
		return err
	}

	genDate := now.Format(schema.ISODate)
	if store.Exists(schema.CommitCategory, genDate) {
		progress(ctx, "Skipping %s: commit report already exists\n", genDate)
		return nil
	}
	progress(ctx, "Processing commits since %s...\n", contract.MonthStart(now).Format(schema.ISODate))

	since := contract.MonthStart(now)
	result := svc.SearchCommits(ctx, since)
	if len(result.Commits) == 0 {
		result = svc.EnumerateCommits(ctx, since)
	}
	if result.Outcome.Status != schema.FetchOK {
		contract.LogWarn("Commit discovery degraded", errors.New(result.Outcome.Reason))
	}
	progress(ctx, "Found %d commits via %s strategy\n", len(result.Commits), result.Strategy)

	content := render.CommitReport(since, GroupCommits(result.Commits))
	if err := store.Write(schema.CommitCategory, genDate, content); err != nil {
		return err
	}
	progress(ctx, "Saved commit report to %s\n", store.Path(schema.CommitCategory, genDate))
	return nil
}

// GroupCommits nests commits by calendar date (author timestamp, newest day
// first), then by owning repository. No deduplication is performed.
func GroupCommits(commits []schema.CommitRecord) []schema.DayGroup {
	byDay := make(map[string]map[string][]schema.CommitRecord)
	repoURLs := make(map[string]string)
	for _, c := range commits {
		date := c.AuthoredAt.Format(schema.ISODate)
		if byDay[date] == nil {
			byDay[date] = make(map[string][]schema.CommitRecord)
		}
		byDay[date][c.RepoFull] = append(byDay[date][c.RepoFull], c)
		repoURLs[c.RepoFull] = c.RepoURL
	}

	dates := make([]string, 0, len(byDay))
	for date := range byDay {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	days := make([]schema.DayGroup, 0, len(dates))
	for _, date := range dates {
		repos := make([]string, 0, len(byDay[date]))
		for repo := range byDay[date] {
			repos = append(repos, repo)
		}
		sort.Strings(repos)

		day := schema.DayGroup{Date: date}
		for _, repo := range repos {
			day.Repos = append(day.Repos, schema.RepoGroup{
				Repo:    repo,
				URL:     repoURLs[repo],
				Commits: byDay[date][repo],
			})
		}
		days = append(days, day)
	}
	return days
}
