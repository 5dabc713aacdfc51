package core

import (
	"context"
	"os"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/artifact"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/render"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// ExecuteReports generates the time-tracking report for each target date,
// skipping dates whose artifact already exists. Dates are processed
// sequentially; a date's fetch problems degrade to an empty report rather
// than aborting the run.
func ExecuteReports(ctx context.Context, cfg *contract.Config, svc contract.ActivityService, store *artifact.Store, dates []string) error {
	if err := store.EnsureDir(schema.ReportCategory); err != nil {
		return err
	}

	for _, date := range dates {
		if store.Exists(schema.ReportCategory, date) {
			progress(ctx, "Skipping %s: report already exists\n", date)
			continue
		}
		progress(ctx, "Processing %s...\n", date)

		summary, activities, hours := fetchDay(ctx, svc, date)
		content := render.DailyReport(cfg, summary, activities, hours)
		if err := store.Write(schema.ReportCategory, date, content); err != nil {
			return err
		}
		progress(ctx, "Saved report to %s\n", store.Path(schema.ReportCategory, date))

		if !quietConsole(ctx) {
			if err := render.PreviewTable(os.Stdout, cfg, summary); err != nil {
				contract.LogWarn("Preview table failed", err)
			}
		}
	}
	return nil
}

// fetchDay gathers one date's summary, activities and hourly documents.
// Remote failures are logged and replaced with benign defaults so the report
// is still written; the direct summary falls back to reconstruction from raw
// intervals when the feed has no entry for the date.
func fetchDay(ctx context.Context, svc contract.ActivityService, date string) (*schema.DailyActivitySummary, []schema.ActivityRecord, []schema.HourGroup) {
	summary, err := svc.DailySummary(ctx, date)
	if err != nil {
		contract.LogWarn("Daily summary fetch degraded for "+date, err)
	}
	if summary == nil {
		intervals, err := svc.Intervals(ctx, date)
		if err != nil {
			contract.LogWarn("Interval fetch degraded for "+date, err)
		}
		summary = SummaryFromIntervals(date, intervals)
	}

	rawActivities, err := svc.Activities(ctx, date)
	if err != nil {
		contract.LogWarn("Activity fetch degraded for "+date, err)
	}

	docs, err := svc.Documents(ctx, date)
	if err != nil {
		contract.LogWarn("Document fetch degraded for "+date, err)
	}

	return summary, DedupeActivities(rawActivities), GroupByHour(docs)
}
