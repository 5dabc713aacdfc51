package schema

import "time"

// CommitRecord is one source-control commit attributed to the reported user.
type CommitRecord struct {
	SHA        string
	ShortSHA   string
	Author     string
	AuthoredAt time.Time
	Message    string // first line only
	RepoName   string
	RepoFull   string
	RepoURL    string
}

// RepoGroup holds one repository's commits within a day.
type RepoGroup struct {
	Repo    string
	URL     string
	Commits []CommitRecord
}

// DayGroup holds one calendar day's commits, nested by repository.
type DayGroup struct {
	Date  string
	Repos []RepoGroup
}

// FetchOutcome classifies how a remote fetch ended. A degraded outcome still
// carries whatever was accumulated before the failure.
type FetchOutcome struct {
	Status FetchStatus
	Reason string
}

// OK returns a successful fetch outcome.
func OK() FetchOutcome {
	return FetchOutcome{Status: FetchOK}
}

// Degraded returns a partial-result outcome with the given reason.
func Degraded(reason string) FetchOutcome {
	return FetchOutcome{Status: FetchDegraded, Reason: reason}
}

// Failed returns a no-result outcome with the given reason.
func Failed(reason string) FetchOutcome {
	return FetchOutcome{Status: FetchFailed, Reason: reason}
}

// CommitFetchResult is the output of one commit discovery run. Results from
// the two strategies are never merged.
type CommitFetchResult struct {
	Commits  []CommitRecord
	Strategy CommitStrategy
	Outcome  FetchOutcome
}

// CategoryStatus summarizes the artifacts present for one category.
type CategoryStatus struct {
	Category Category
	Count    int
	Oldest   string
	Newest   string
}
