// Package github implements commit discovery against the source-control host.
//
// Two strategies exist: a single cross-repository search query and a full
// repository-enumeration fallback. They are alternatives, never merged in the
// same run; whether that masks search under-reporting is an upstream question
// this package does not try to answer.
package github

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// searchAccept is the preview media type required by the commit search endpoint.
const searchAccept = "application/vnd.github.cloak-preview+json"

// Client calls the source-control host's REST API with a static bearer token.
type Client struct {
	client    *resty.Client
	user      string
	pageSize  int
	pageDelay time.Duration
	workers   int
}

// NewClient creates a GitHub client for the configured user.
func NewClient(cfg *contract.Config, user, token string) *Client {
	c := resty.New().
		SetBaseURL(cfg.GitHubBaseURL).
		SetAuthToken(token).
		SetHeader("Accept", "application/vnd.github+json").
		SetTimeout(30 * time.Second)

	return &Client{
		client:    c,
		user:      user,
		pageSize:  cfg.PageSize,
		pageDelay: cfg.PageDelay,
		workers:   cfg.Workers,
	}
}

type searchResponse struct {
	TotalCount int          `json:"total_count"`
	Items      []searchItem `json:"items"`
}

type searchItem struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Repository struct {
		Name     string `json:"name"`
		FullName string `json:"full_name"`
		HTMLURL  string `json:"html_url"`
	} `json:"repository"`
}

type repoEntry struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

type orgEntry struct {
	Login string `json:"login"`
}

type commitEntry struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// SearchCommits runs the single cross-repository search query, paginating
// until exhausted. A page failure returns whatever was accumulated so far as
// a degraded result.
func (c *Client) SearchCommits(ctx context.Context, since time.Time) schema.CommitFetchResult {
	query := fmt.Sprintf("author:%s author-date:>=%s", c.user, since.Format(schema.ISODate))

	var commits []schema.CommitRecord
	for page := 1; ; page++ {
		var out searchResponse
		resp, err := c.client.R().
			SetContext(ctx).
			SetHeader("Accept", searchAccept).
			SetQueryParams(map[string]string{
				"q":        query,
				"sort":     "author-date",
				"order":    "desc",
				"per_page": strconv.Itoa(c.pageSize),
				"page":     strconv.Itoa(page),
			}).
			SetResult(&out).
			Get("/search/commits")
		if err != nil {
			return schema.CommitFetchResult{
				Commits:  commits,
				Strategy: schema.SearchStrategy,
				Outcome:  schema.Degraded(fmt.Sprintf("search page %d: %v", page, err)),
			}
		}
		if resp.IsError() {
			c.logRateLimit(resp)
			return schema.CommitFetchResult{
				Commits:  commits,
				Strategy: schema.SearchStrategy,
				Outcome:  schema.Degraded(fmt.Sprintf("search page %d returned %s", page, resp.Status())),
			}
		}

		for _, item := range out.Items {
			commits = append(commits, convertSearchItem(item))
		}
		if len(out.Items) == 0 || !hasNextPage(resp.Header().Get("Link")) {
			break
		}
		time.Sleep(c.pageDelay)
	}

	return schema.CommitFetchResult{
		Commits:  commits,
		Strategy: schema.SearchStrategy,
		Outcome:  schema.OK(),
	}
}

// EnumerateCommits lists personal repositories, organizations and each
// organization's repositories, then fetches commits per repository with a
// bounded worker pool. A single repository's failure yields an empty result
// for that repository without affecting others.
func (c *Client) EnumerateCommits(ctx context.Context, since time.Time) schema.CommitFetchResult {
	outcome := schema.OK()

	repos, repoOutcome := c.listRepos(ctx, "/user/repos")
	mergeOutcome(&outcome, repoOutcome)

	orgs, orgOutcome := c.listOrgs(ctx)
	mergeOutcome(&outcome, orgOutcome)
	for _, org := range orgs {
		orgRepos, o := c.listRepos(ctx, "/orgs/"+org.Login+"/repos")
		mergeOutcome(&outcome, o)
		repos = append(repos, orgRepos...)
	}

	repoCh := make(chan repoEntry, len(repos))
	resultCh := make(chan []schema.CommitRecord, len(repos))
	var wg sync.WaitGroup

	for range c.workers {
		wg.Go(func() {
			for repo := range repoCh {
				resultCh <- c.repoCommits(ctx, repo, since)
			}
		})
	}
	for _, repo := range repos {
		repoCh <- repo
	}
	close(repoCh)
	wg.Wait()
	close(resultCh)

	var commits []schema.CommitRecord
	for batch := range resultCh {
		commits = append(commits, batch...)
	}

	return schema.CommitFetchResult{
		Commits:  commits,
		Strategy: schema.EnumerationStrategy,
		Outcome:  outcome,
	}
}

// listRepos pages through a repository list endpoint.
func (c *Client) listRepos(ctx context.Context, path string) ([]repoEntry, schema.FetchOutcome) {
	var repos []repoEntry
	outcome := c.paginate(ctx, path, nil, func() any {
		return &[]repoEntry{}
	}, func(page any) int {
		items := *page.(*[]repoEntry)
		repos = append(repos, items...)
		return len(items)
	})
	return repos, outcome
}

// listOrgs pages through the user's organization memberships.
func (c *Client) listOrgs(ctx context.Context) ([]orgEntry, schema.FetchOutcome) {
	var orgs []orgEntry
	outcome := c.paginate(ctx, "/user/orgs", nil, func() any {
		return &[]orgEntry{}
	}, func(page any) int {
		items := *page.(*[]orgEntry)
		orgs = append(orgs, items...)
		return len(items)
	})
	return orgs, outcome
}

// repoCommits fetches one repository's commits authored by the user since the
// given time. Failures degrade to an empty slice.
func (c *Client) repoCommits(ctx context.Context, repo repoEntry, since time.Time) []schema.CommitRecord {
	var commits []schema.CommitRecord
	params := map[string]string{
		"author": c.user,
		"since":  since.Format(time.RFC3339),
	}
	outcome := c.paginate(ctx, "/repos/"+repo.FullName+"/commits", params, func() any {
		return &[]commitEntry{}
	}, func(page any) int {
		items := *page.(*[]commitEntry)
		for _, item := range items {
			commits = append(commits, convertCommitEntry(item, repo))
		}
		return len(items)
	})
	if outcome.Status != schema.FetchOK {
		contract.LogWarn("Commits for "+repo.FullName+" are incomplete", fmt.Errorf("%s", outcome.Reason))
	}
	return commits
}

// paginate requests successive pages until a page returns zero items or the
// Link header stops advertising a next page. A request failure stops early
// and reports a degraded outcome; accumulated items are kept by the caller.
func (c *Client) paginate(ctx context.Context, path string, params map[string]string, newPage func() any, collect func(any) int) schema.FetchOutcome {
	for page := 1; ; page++ {
		out := newPage()
		req := c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"per_page": strconv.Itoa(c.pageSize),
				"page":     strconv.Itoa(page),
			}).
			SetQueryParams(params).
			SetResult(out)

		resp, err := req.Get(path)
		if err != nil {
			return schema.Degraded(fmt.Sprintf("%s page %d: %v", path, page, err))
		}
		if resp.IsError() {
			c.logRateLimit(resp)
			return schema.Degraded(fmt.Sprintf("%s page %d returned %s", path, page, resp.Status()))
		}

		if collect(out) == 0 || !hasNextPage(resp.Header().Get("Link")) {
			return schema.OK()
		}
		time.Sleep(c.pageDelay)
	}
}

// logRateLimit surfaces the provider's reset time on 403-class responses.
// The pipeline does not wait for the reset; it degrades and reports partial
// data to the operator.
func (c *Client) logRateLimit(resp *resty.Response) {
	if resp.StatusCode() != 403 {
		return
	}
	reset := resp.Header().Get("X-RateLimit-Reset")
	if reset == "" {
		return
	}
	if unix, err := strconv.ParseInt(reset, 10, 64); err == nil {
		contract.LogWarn("Rate limited", fmt.Errorf("limit resets at %s", time.Unix(unix, 0).Format(time.RFC3339)))
	}
}

// hasNextPage reports whether the Link response header advertises a next page.
func hasNextPage(link string) bool {
	return strings.Contains(link, `rel="next"`)
}

func convertSearchItem(item searchItem) schema.CommitRecord {
	authoredAt, _ := time.Parse(time.RFC3339, item.Commit.Author.Date)
	return schema.CommitRecord{
		SHA:        item.SHA,
		ShortSHA:   shortSHA(item.SHA),
		Author:     item.Commit.Author.Name,
		AuthoredAt: authoredAt,
		Message:    firstLine(item.Commit.Message),
		RepoName:   item.Repository.Name,
		RepoFull:   item.Repository.FullName,
		RepoURL:    item.Repository.HTMLURL,
	}
}

func convertCommitEntry(item commitEntry, repo repoEntry) schema.CommitRecord {
	authoredAt, _ := time.Parse(time.RFC3339, item.Commit.Author.Date)
	return schema.CommitRecord{
		SHA:        item.SHA,
		ShortSHA:   shortSHA(item.SHA),
		Author:     item.Commit.Author.Name,
		AuthoredAt: authoredAt,
		Message:    firstLine(item.Commit.Message),
		RepoName:   repo.Name,
		RepoFull:   repo.FullName,
		RepoURL:    repo.HTMLURL,
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

// mergeOutcome keeps the first degradation seen across sub-fetches.
func mergeOutcome(dst *schema.FetchOutcome, src schema.FetchOutcome) {
	if dst.Status == schema.FetchOK && src.Status != schema.FetchOK {
		*dst = src
	}
}
