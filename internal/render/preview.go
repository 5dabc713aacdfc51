package render

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// PreviewTable prints the day's time distribution as a console table after a
// report is generated.
func PreviewTable(w io.Writer, cfg *contract.Config, summary *schema.DailyActivitySummary) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Duration", "Share"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, level := range schema.LevelOrder {
		share := summary.Shares[level]
		label := level.Label()
		if cfg.UseColors {
			label = contract.GetColorLabel(level)
		}
		data = append(data, []string{
			label,
			contract.FormatDuration(share.Seconds),
			contract.FormatPercent(share.Percent),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total %s, score %d/100\n",
		contract.FormatDuration(summary.TotalSeconds), contract.ClampScore(summary.Pulse))
	return err
}

// StatusTable prints the artifact inventory across all categories.
func StatusTable(w io.Writer, cfg *contract.Config, statuses []schema.CategoryStatus) error {
	maxWidth := statusNameWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Artifacts", "Oldest", "Newest"})

	var data [][]string
	for _, st := range statuses {
		oldest, newest := st.Oldest, st.Newest
		if st.Count == 0 {
			oldest, newest = "-", "-"
		}
		data = append(data, []string{
			contract.TruncateText(string(st.Category), maxWidth),
			fmt.Sprintf("%d", st.Count),
			oldest,
			newest,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// statusNameWidth bounds the category column by the terminal width, with a
// conservative default for narrow terminals and CI.
func statusNameWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the three date/count columns plus borders and padding.
	width := termWidth - 50
	if width < 10 {
		width = 10
	}
	return width
}
