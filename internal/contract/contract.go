// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// ActivityService defines the operations needed from the time-tracking
// provider. This allows the report pipeline to be tested without network
// access.
type ActivityService interface {
	// DailySummary returns the provider's direct summary for the date, or nil
	// when the provider has no entry for it.
	DailySummary(ctx context.Context, date string) (*schema.DailyActivitySummary, error)

	// Activities returns named-activity rows for the date, not yet deduplicated.
	Activities(ctx context.Context, date string) ([]schema.ActivityRecord, error)

	// Documents returns window/tab-title rows for the date, tagged with
	// hour-of-day buckets.
	Documents(ctx context.Context, date string) ([]schema.DocumentRecord, error)

	// Intervals returns raw productivity-level intervals for the date, used to
	// reconstruct a summary when DailySummary has no entry.
	Intervals(ctx context.Context, date string) ([]schema.IntervalRecord, error)
}

// CommitService defines the two commit discovery strategies. Each returns
// whatever was accumulated before any failure; the outcome says which kind of
// result the caller is looking at.
type CommitService interface {
	// SearchCommits runs the single cross-repository search query.
	SearchCommits(ctx context.Context, since time.Time) schema.CommitFetchResult

	// EnumerateCommits lists personal and organization repositories and fetches
	// commits per repository. Used only when search yields zero results.
	EnumerateCommits(ctx context.Context, since time.Time) schema.CommitFetchResult
}

// ChatService defines the language-model call used for summarization.
type ChatService interface {
	// Complete sends a system and user message and returns the trimmed text of
	// the first response choice.
	Complete(ctx context.Context, system, user string) (string, error)
}
