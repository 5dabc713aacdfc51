// Package rescuetime implements the time-tracking provider client.
package rescuetime

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// Analytic data endpoint variants.
const (
	activityKind     = "activity"
	documentKind     = "document"
	productivityKind = "productivity"
)

// Client calls the RescueTime analytic API with a static API key.
type Client struct {
	client *resty.Client
	key    string
}

// NewClient creates a RescueTime client for the given base URL and API key.
func NewClient(baseURL, key string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &Client{client: c, key: key}
}

// summaryFeedEntry is one day's record from the daily summary feed.
type summaryFeedEntry struct {
	Date                      string  `json:"date"`
	ProductivityPulse         float64 `json:"productivity_pulse"`
	TotalDurationSeconds      int     `json:"total_duration_seconds"`
	VeryProductiveSeconds     int     `json:"very_productive_duration_seconds"`
	ProductiveSeconds         int     `json:"productive_duration_seconds"`
	NeutralSeconds            int     `json:"neutral_duration_seconds"`
	DistractingSeconds        int     `json:"distracting_duration_seconds"`
	VeryDistractingSeconds    int     `json:"very_distracting_duration_seconds"`
	VeryProductivePercentage  float64 `json:"very_productive_percentage"`
	ProductivePercentage      float64 `json:"productive_percentage"`
	NeutralPercentage         float64 `json:"neutral_percentage"`
	DistractingPercentage     float64 `json:"distracting_percentage"`
	VeryDistractingPercentage float64 `json:"very_distracting_percentage"`
}

// analyticResponse is the row-oriented payload of the analytic data endpoint.
type analyticResponse struct {
	RowHeaders []string `json:"row_headers"`
	Rows       [][]any  `json:"rows"`
}

// DailySummary returns the provider's direct summary for the date, or nil
// when the feed has no entry for it.
func (c *Client) DailySummary(ctx context.Context, date string) (*schema.DailyActivitySummary, error) {
	var feed []summaryFeedEntry
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":            c.key,
			"format":         "json",
			"restrict_begin": date,
			"restrict_end":   date,
		}).
		SetResult(&feed).
		Get("/anapi/daily_summary_feed")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("daily summary feed returned %s", resp.Status())
	}

	// The feed can include surrounding days even when restricted, so the
	// date filter stays client-side.
	for _, entry := range feed {
		if entry.Date != date {
			continue
		}
		return &schema.DailyActivitySummary{
			Date:         entry.Date,
			TotalSeconds: entry.TotalDurationSeconds,
			Pulse:        entry.ProductivityPulse,
			Shares: map[schema.ProductivityLevel]schema.CategoryShare{
				schema.VeryProductive:  {Seconds: entry.VeryProductiveSeconds, Percent: entry.VeryProductivePercentage},
				schema.Productive:      {Seconds: entry.ProductiveSeconds, Percent: entry.ProductivePercentage},
				schema.Neutral:         {Seconds: entry.NeutralSeconds, Percent: entry.NeutralPercentage},
				schema.Distracting:     {Seconds: entry.DistractingSeconds, Percent: entry.DistractingPercentage},
				schema.VeryDistracting: {Seconds: entry.VeryDistractingSeconds, Percent: entry.VeryDistractingPercentage},
			},
		}, nil
	}
	return nil, nil
}

// Activities returns named-activity rows for the date. Rows are
// `[rank, seconds, people, name, category, productivity]`; malformed rows are
// skipped.
func (c *Client) Activities(ctx context.Context, date string) ([]schema.ActivityRecord, error) {
	out, err := c.analyticData(ctx, date, "rank", activityKind)
	if err != nil {
		return nil, err
	}

	var records []schema.ActivityRecord
	for _, row := range out.Rows {
		if len(row) < 6 {
			continue
		}
		name, okName := asString(row[3])
		seconds, okSeconds := asInt(row[1])
		if !okName || !okSeconds {
			continue
		}
		category, _ := asString(row[4])
		level, _ := asInt(row[5])
		records = append(records, schema.ActivityRecord{
			Name:     name,
			Category: category,
			Seconds:  seconds,
			Level:    schema.ProductivityLevel(level),
		})
	}
	return records, nil
}

// Documents returns window/tab-title rows for the date, tagged with
// hour-of-day buckets extracted from the leading interval timestamp.
func (c *Client) Documents(ctx context.Context, date string) ([]schema.DocumentRecord, error) {
	out, err := c.analyticData(ctx, date, "interval", documentKind)
	if err != nil {
		return nil, err
	}

	var records []schema.DocumentRecord
	for _, row := range out.Rows {
		if len(row) < 6 {
			continue
		}
		ts, okTS := asString(row[0])
		seconds, okSeconds := asInt(row[1])
		title, okTitle := asString(row[3])
		if !okTS || !okSeconds || !okTitle {
			continue
		}
		app, _ := asString(row[4])
		level, _ := asInt(row[5])
		records = append(records, schema.DocumentRecord{
			Title:   title,
			App:     app,
			Seconds: seconds,
			Level:   schema.ProductivityLevel(level),
			Hour:    HourBucket(ts),
		})
	}
	return records, nil
}

// Intervals returns raw productivity-level rows for the date, used to
// reconstruct a summary when the feed lacks the date.
func (c *Client) Intervals(ctx context.Context, date string) ([]schema.IntervalRecord, error) {
	out, err := c.analyticData(ctx, date, "interval", productivityKind)
	if err != nil {
		return nil, err
	}

	var records []schema.IntervalRecord
	for _, row := range out.Rows {
		if len(row) < 4 {
			continue
		}
		seconds, okSeconds := asInt(row[1])
		level, okLevel := asInt(row[3])
		if !okSeconds || !okLevel {
			continue
		}
		records = append(records, schema.IntervalRecord{
			Seconds: seconds,
			Level:   schema.ProductivityLevel(level),
		})
	}
	return records, nil
}

// analyticData calls the data endpoint restricted to a single date.
func (c *Client) analyticData(ctx context.Context, date, perspective, kind string) (*analyticResponse, error) {
	var out analyticResponse
	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":            c.key,
			"format":         "json",
			"perspective":    perspective,
			"restrict_kind":  kind,
			"restrict_begin": date,
			"restrict_end":   date,
		}).
		SetResult(&out)
	if perspective == "interval" {
		req.SetQueryParam("resolution_time", "hour")
	}

	resp, err := req.Get("/anapi/data")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("analytic data (%s/%s) returned %s", perspective, kind, resp.Status())
	}
	return &out, nil
}

// HourBucket extracts the zero-padded "HH:00" bucket from an interval
// timestamp like "2025-04-20T09:00:00". Timestamps that do not match this
// shape fall into the unclassified bucket.
func HourBucket(ts string) string {
	if len(ts) < 13 || ts[10] != 'T' {
		return schema.UnclassifiedHour
	}
	h1, h2 := ts[11], ts[12]
	if h1 < '0' || h1 > '9' || h2 < '0' || h2 > '9' {
		return schema.UnclassifiedHour
	}
	return ts[11:13] + ":00"
}

// asString extracts a string cell from a mixed-type analytic row.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asInt extracts a numeric cell from a mixed-type analytic row. JSON numbers
// decode as float64.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
