// Package render has the markdown and console writers for generated reports.
package render

import (
	"fmt"
	"strings"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// DailyReport renders the fixed-section markdown document for one day of
// tracked activity. Activities must already be deduplicated and sorted by
// descending duration; hour groups must be sorted ascending with entries
// sorted by descending duration.
func DailyReport(cfg *contract.Config, summary *schema.DailyActivitySummary, activities []schema.ActivityRecord, hours []schema.HourGroup) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# RescueTime Report - %s\n\n", contract.FormatHuman(summary.Date))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Total time tracked:** %s (%s)\n",
		contract.FormatDuration(summary.TotalSeconds),
		contract.FormatDecimalHours(summary.TotalSeconds))
	fmt.Fprintf(&b, "- **Productivity score:** %d/100\n\n", contract.ClampScore(summary.Pulse))

	b.WriteString("## Time Distribution\n\n")
	for _, level := range schema.LevelOrder {
		share := summary.Shares[level]
		fmt.Fprintf(&b, "- **%s:** %s (%s)\n",
			level.Label(),
			contract.FormatDuration(share.Seconds),
			contract.FormatPercent(share.Percent))
	}
	b.WriteString("\n")

	b.WriteString("## Top Activities\n\n")
	if len(activities) == 0 {
		b.WriteString("No activities recorded.\n")
	}
	top := activities
	if len(top) > cfg.TopActivities {
		top = top[:cfg.TopActivities]
	}
	for i, a := range top {
		fmt.Fprintf(&b, "%d. **%s** (%s) - %s (%s)\n",
			i+1, a.Name, contract.FormatDuration(a.Seconds), a.Category, a.Level.Label())
	}
	b.WriteString("\n")

	b.WriteString("## Hourly Breakdown\n")
	for _, hour := range hours {
		fmt.Fprintf(&b, "\n### %s\n\n", hour.Hour)
		docs := hour.Docs
		if len(docs) > cfg.TopPerHour {
			docs = docs[:cfg.TopPerHour]
		}
		if len(docs) == 0 {
			b.WriteString("No data for this hour.\n")
			continue
		}
		for _, d := range docs {
			fmt.Fprintf(&b, "- **%s** (%s) - %s (%s)\n",
				d.Title, contract.FormatDuration(d.Seconds), d.App, d.Level.Label())
		}
	}

	return b.String()
}
