// Package core holds the orchestration and transform logic for the three
// generation pipelines.
package core

import (
	"sort"

	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// DedupeActivities merges raw rows sharing an activity name by summing their
// durations, then sorts by descending duration. The first row seen for a name
// keeps its category and productivity level.
func DedupeActivities(rows []schema.ActivityRecord) []schema.ActivityRecord {
	index := make(map[string]int, len(rows))
	var merged []schema.ActivityRecord
	for _, row := range rows {
		if i, ok := index[row.Name]; ok {
			merged[i].Seconds += row.Seconds
			continue
		}
		index[row.Name] = len(merged)
		merged = append(merged, row)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Seconds > merged[j].Seconds
	})
	return merged
}

// GroupByHour buckets document rows by hour-of-day, hours ascending with the
// unclassified bucket last, entries within each hour sorted by descending
// duration.
func GroupByHour(docs []schema.DocumentRecord) []schema.HourGroup {
	buckets := make(map[string][]schema.DocumentRecord)
	for _, d := range docs {
		buckets[d.Hour] = append(buckets[d.Hour], d)
	}

	hours := make([]string, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		// The unclassified bucket sorts after every numeric hour.
		if hours[i] == schema.UnclassifiedHour {
			return false
		}
		if hours[j] == schema.UnclassifiedHour {
			return true
		}
		return hours[i] < hours[j]
	})

	groups := make([]schema.HourGroup, 0, len(hours))
	for _, h := range hours {
		docs := buckets[h]
		sort.SliceStable(docs, func(i, j int) bool {
			return docs[i].Seconds > docs[j].Seconds
		})
		groups = append(groups, schema.HourGroup{Hour: h, Docs: docs})
	}
	return groups
}

// SummaryFromIntervals reconstructs a daily summary from raw productivity
// intervals when the direct summary endpoint lacks the date. The score is an
// hourly-normalized weighted average of productivity level, offset by 50 so a
// neutral day lands at 50. A day with zero tracked seconds yields all zeros.
func SummaryFromIntervals(date string, intervals []schema.IntervalRecord) *schema.DailyActivitySummary {
	summary := &schema.DailyActivitySummary{
		Date:   date,
		Shares: make(map[schema.ProductivityLevel]schema.CategoryShare),
	}
	for _, level := range schema.LevelOrder {
		summary.Shares[level] = schema.CategoryShare{}
	}

	var weighted float64
	for _, iv := range intervals {
		share := summary.Shares[iv.Level]
		share.Seconds += iv.Seconds
		summary.Shares[iv.Level] = share
		summary.TotalSeconds += iv.Seconds
		weighted += float64(iv.Seconds) * float64(iv.Level)
	}

	if summary.TotalSeconds == 0 {
		return summary
	}

	for level, share := range summary.Shares {
		share.Percent = float64(share.Seconds) / float64(summary.TotalSeconds) * 100
		summary.Shares[level] = share
	}

	hours := float64(summary.TotalSeconds) / 3600
	summary.Pulse = weighted/hours + 50
	return summary
}
