package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// CommitReport renders the commit-history markdown document, grouped first by
// calendar date, then by owning repository.
func CommitReport(month time.Time, days []schema.DayGroup) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# GitHub Commits - %s\n", month.Format("January 2006"))

	if len(days) == 0 {
		b.WriteString("\nNo commits found for this period.\n")
		return b.String()
	}

	for _, day := range days {
		fmt.Fprintf(&b, "\n## %s\n", day.Date)
		for _, repo := range day.Repos {
			fmt.Fprintf(&b, "\n### [%s](%s)\n\n", repo.Repo, repo.URL)
			for _, c := range repo.Commits {
				fmt.Fprintf(&b, "- `%s` %s (%s, %s)\n",
					c.ShortSHA, c.Message, c.Author, c.AuthoredAt.Format("15:04"))
			}
		}
	}

	return b.String()
}
