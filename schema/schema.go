// Package schema has models and shared types for all parts of the reporter.
package schema

// ProductivityLevel classifies an activity from very distracting (-2) to
// very productive (+2).
type ProductivityLevel int

// All productivity levels supported.
const (
	VeryDistracting ProductivityLevel = -2
	Distracting     ProductivityLevel = -1
	Neutral         ProductivityLevel = 0
	Productive      ProductivityLevel = 1
	VeryProductive  ProductivityLevel = 2
)

// LevelOrder is the canonical rendering order for the five productivity
// categories, most productive first.
var LevelOrder = []ProductivityLevel{
	VeryProductive,
	Productive,
	Neutral,
	Distracting,
	VeryDistracting,
}

// Label returns the human-readable name of the productivity level.
func (l ProductivityLevel) Label() string {
	switch l {
	case VeryProductive:
		return "Very Productive"
	case Productive:
		return "Productive"
	case Neutral:
		return "Neutral"
	case Distracting:
		return "Distracting"
	case VeryDistracting:
		return "Very Distracting"
	default:
		return "Unknown"
	}
}

// CategoryShare holds the tracked duration and share of one productivity
// category within a day.
type CategoryShare struct {
	Seconds int
	Percent float64
}

// DailyActivitySummary aggregates one day of tracked activity. The five
// category durations sum to TotalSeconds within rounding, and the percentages
// sum to roughly 100.
type DailyActivitySummary struct {
	Date         string // yyyy-MM-dd
	TotalSeconds int
	Shares       map[ProductivityLevel]CategoryShare
	Pulse        float64 // 0-100 productivity score; clamped at render time
}

// ActivityRecord is a named activity with accumulated seconds for one date.
// Records are deduplicated by name before rendering.
type ActivityRecord struct {
	Name     string
	Category string
	Seconds  int
	Level    ProductivityLevel
}

// DocumentRecord is a window or tab title tagged with an hour-of-day bucket.
type DocumentRecord struct {
	Title   string
	App     string
	Seconds int
	Level   ProductivityLevel
	Hour    string // "HH:00" or UnclassifiedHour
}

// HourGroup is one hour's document records, sorted by descending duration.
type HourGroup struct {
	Hour string
	Docs []DocumentRecord
}

// IntervalRecord is a raw productivity-level interval used to reconstruct a
// daily summary when the direct summary endpoint has no entry for the date.
type IntervalRecord struct {
	Seconds int
	Level   ProductivityLevel
}

// DaySummary is a persisted per-day artifact read back as summarization
// context.
type DaySummary struct {
	Date    string
	Content string
}
