package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/artifact"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// SummaryFailureText is written as the day's summary when the language-model
// call fails. Writing the sentinel keeps the date's file present so later
// days still find context.
const SummaryFailureText = "Failed to generate summary due to an API error."

// ExecuteSummary generates the narrative summary for one date. The date's
// time-tracking report is required; without it the summary is skipped. The
// commit artifact and prior summaries are included when present.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, chat contract.ChatService, store *artifact.Store, date string) error {
	if err := store.EnsureDir(schema.SummaryCategory); err != nil {
		return err
	}

	if store.Exists(schema.SummaryCategory, date) {
		progress(ctx, "Skipping %s: summary already exists\n", date)
		return nil
	}

	report, err := store.Read(schema.ReportCategory, date)
	if err != nil {
		progress(ctx, "Skipping %s: no report found for this date\n", date)
		return nil
	}
	progress(ctx, "Processing summary for %s...\n", date)

	system := readPromptTemplate(cfg.PromptPath)
	prompt := BuildPrompt(cfg, store, date, report)

	text, err := chat.Complete(ctx, system, prompt)
	if err != nil {
		contract.LogWarn("Summary generation failed for "+date, err)
		text = SummaryFailureText
	}

	if err := store.Write(schema.SummaryCategory, date, text); err != nil {
		return err
	}
	progress(ctx, "Saved summary to %s\n", store.Path(schema.SummaryCategory, date))
	return nil
}

// BuildPrompt stacks the context blocks for the summarization call: the most
// recent prior summaries with their dates as labels, the date's commit
// artifact when one exists, and the day's raw report.
func BuildPrompt(cfg *contract.Config, store *artifact.Store, date, report string) string {
	var b strings.Builder

	recents := recentSummaries(store, date, cfg.ContextWindow)
	if len(recents) > 0 {
		b.WriteString("## Recent summaries\n")
		for _, s := range recents {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n", s.Date, strings.TrimSpace(s.Content))
		}
		b.WriteString("\n")
	}

	if commits, err := store.Read(schema.CommitCategory, date); err == nil {
		fmt.Fprintf(&b, "## Commit history for %s\n\n%s\n\n", date, strings.TrimSpace(commits))
	}

	fmt.Fprintf(&b, "## Activity report for %s\n\n%s\n", date, strings.TrimSpace(report))
	return b.String()
}

// recentSummaries returns up to limit summaries dated strictly before the
// target date, newest-first. A zero window means no recent context at all.
// The strict comparison matters when back-filling an old missing day: later
// days' summaries are not prior context for it.
func recentSummaries(store *artifact.Store, date string, limit int) []schema.DaySummary {
	if limit <= 0 {
		return nil
	}

	all, err := store.ReadAll(schema.SummaryCategory)
	if err != nil {
		contract.LogWarn("Reading prior summaries failed", err)
		return nil
	}

	var recents []schema.DaySummary
	for _, s := range all {
		if s.Date >= date {
			continue
		}
		recents = append(recents, s)
		if len(recents) >= limit {
			break
		}
	}
	return recents
}

// readPromptTemplate loads the external system template, degrading to an
// empty string when the file is absent.
func readPromptTemplate(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
