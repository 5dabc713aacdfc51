package schema

import "path/filepath"

// Custom string types for type safety.
type (
	// Category identifies a class of generated artifacts.
	Category string

	// FetchStatus classifies the outcome of a remote fetch.
	FetchStatus string

	// CommitStrategy identifies which commit discovery strategy produced a result.
	CommitStrategy string
)

// All artifact categories supported.
const (
	ReportCategory  Category = "reports"
	CommitCategory  Category = "commits"
	SummaryCategory Category = "summaries"
)

// All fetch statuses supported.
const (
	FetchOK       FetchStatus = "ok"       // full result set
	FetchDegraded FetchStatus = "degraded" // partial result set, remainder lost to a request failure
	FetchFailed   FetchStatus = "failed"   // nothing usable came back
)

// All commit discovery strategies supported.
const (
	SearchStrategy      CommitStrategy = "search"
	EnumerationStrategy CommitStrategy = "enumeration"
)

// ISODate is the date layout used for filenames and API parameters.
const ISODate = "2006-01-02"

// UnclassifiedHour is the bucket for document rows whose timestamp does not
// match the provider's expected shape.
const UnclassifiedHour = "unclassified"

// Dir returns the category's directory relative to the output root.
func (c Category) Dir() string {
	switch c {
	case CommitCategory:
		return filepath.Join("context", "commits")
	default:
		return string(c)
	}
}

// Prefix returns the filename prefix for the category.
func (c Category) Prefix() string {
	switch c {
	case ReportCategory:
		return "rescuetime-report"
	case CommitCategory:
		return "github-commits"
	default:
		return "summary"
	}
}

// Filename returns the deterministic artifact filename for a date.
func (c Category) Filename(date string) string {
	return c.Prefix() + "-" + date + ".md"
}

// Categories lists all artifact categories in display order.
var Categories = []Category{ReportCategory, CommitCategory, SummaryCategory}
