package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/artifact"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

type fakeCommitService struct {
	searchResult    schema.CommitFetchResult
	searchCalls     int
	enumerateResult schema.CommitFetchResult
	enumerateCalls  int
}

func (f *fakeCommitService) SearchCommits(context.Context, time.Time) schema.CommitFetchResult {
	f.searchCalls++
	return f.searchResult
}

func (f *fakeCommitService) EnumerateCommits(context.Context, time.Time) schema.CommitFetchResult {
	f.enumerateCalls++
	return f.enumerateResult
}

func sampleCommit(repo, sha string, at time.Time) schema.CommitRecord {
	return schema.CommitRecord{
		SHA:        sha,
		ShortSHA:   sha[:7],
		Author:     "octocat",
		AuthoredAt: at,
		Message:    "fix flaky pagination",
		RepoName:   repo,
		RepoFull:   "octocat/" + repo,
		RepoURL:    "https://github.com/octocat/" + repo,
	}
}

func TestExecuteCommitsUsesSearchFirst(t *testing.T) {
	store := artifact.NewStore(t.TempDir())
	now := time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)
	svc := &fakeCommitService{
		searchResult: schema.CommitFetchResult{
			Commits:  []schema.CommitRecord{sampleCommit("hotspot", "abcdef1234567", now)},
			Strategy: schema.SearchStrategy,
			Outcome:  schema.OK(),
		},
	}
	ctx := WithQuietConsole(context.Background())

	require.NoError(t, ExecuteCommits(ctx, svc, store, now))

	assert.Equal(t, 1, svc.searchCalls)
	assert.Zero(t, svc.enumerateCalls)

	content, err := store.Read(schema.CommitCategory, "2025-04-20")
	require.NoError(t, err)
	assert.Contains(t, content, "# GitHub Commits - April 2025")
	assert.Contains(t, content, "octocat/hotspot")
}

func TestExecuteCommitsFallsBackOnZeroResults(t *testing.T) {
	store := artifact.NewStore(t.TempDir())
	now := time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)
	svc := &fakeCommitService{
		searchResult: schema.CommitFetchResult{Strategy: schema.SearchStrategy, Outcome: schema.OK()},
		enumerateResult: schema.CommitFetchResult{
			Commits:  []schema.CommitRecord{sampleCommit("hotspot", "1234567abcdef", now)},
			Strategy: schema.EnumerationStrategy,
			Outcome:  schema.OK(),
		},
	}
	ctx := WithQuietConsole(context.Background())

	require.NoError(t, ExecuteCommits(ctx, svc, store, now))

	assert.Equal(t, 1, svc.searchCalls)
	assert.Equal(t, 1, svc.enumerateCalls)

	content, err := store.Read(schema.CommitCategory, "2025-04-20")
	require.NoError(t, err)
	assert.Contains(t, content, "1234567")
}

func TestExecuteCommitsNoFallbackOnPartialSearch(t *testing.T) {
	store := artifact.NewStore(t.TempDir())
	now := time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)
	svc := &fakeCommitService{
		searchResult: schema.CommitFetchResult{
			Commits:  []schema.CommitRecord{sampleCommit("hotspot", "abcdef1234567", now)},
			Strategy: schema.SearchStrategy,
			Outcome:  schema.Degraded("page 2 returned 502"),
		},
	}
	ctx := WithQuietConsole(context.Background())

	require.NoError(t, ExecuteCommits(ctx, svc, store, now))

	// A degraded search with partial results still wins over enumeration
	assert.Zero(t, svc.enumerateCalls)
	assert.True(t, store.Exists(schema.CommitCategory, "2025-04-20"))
}

func TestExecuteCommitsSkipsExisting(t *testing.T) {
	store := artifact.NewStore(t.TempDir())
	now := time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)
	svc := &fakeCommitService{}
	ctx := WithQuietConsole(context.Background())

	require.NoError(t, store.EnsureDir(schema.CommitCategory))
	require.NoError(t, store.Write(schema.CommitCategory, "2025-04-20", "existing"))

	require.NoError(t, ExecuteCommits(ctx, svc, store, now))

	assert.Zero(t, svc.searchCalls)
	assert.Zero(t, svc.enumerateCalls)
}

func TestGroupCommits(t *testing.T) {
	commits := []schema.CommitRecord{
		sampleCommit("hotspot", "aaaaaaa111111", time.Date(2025, time.April, 18, 9, 0, 0, 0, time.UTC)),
		sampleCommit("zebra", "bbbbbbb222222", time.Date(2025, time.April, 19, 10, 0, 0, 0, time.UTC)),
		sampleCommit("alpha", "ccccccc333333", time.Date(2025, time.April, 19, 11, 0, 0, 0, time.UTC)),
	}

	days := GroupCommits(commits)

	require.Len(t, days, 2)
	// Newest day first
	assert.Equal(t, "2025-04-19", days[0].Date)
	assert.Equal(t, "2025-04-18", days[1].Date)

	// Repos alphabetical within a day
	require.Len(t, days[0].Repos, 2)
	assert.Equal(t, "octocat/alpha", days[0].Repos[0].Repo)
	assert.Equal(t, "octocat/zebra", days[0].Repos[1].Repo)
}

func TestGroupCommitsEmpty(t *testing.T) {
	assert.Empty(t, GroupCommits(nil))
}
