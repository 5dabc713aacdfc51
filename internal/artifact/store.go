// Package artifact implements the date-keyed markdown store backing all three
// pipelines. The existence of a file for a date is the sole cache signal.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// Store manages per-category artifact directories under a single output root.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given output directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Dir returns the absolute directory for a category.
func (s *Store) Dir(cat schema.Category) string {
	return filepath.Join(s.root, cat.Dir())
}

// Path returns the deterministic artifact path for a category and date.
func (s *Store) Path(cat schema.Category, date string) string {
	return filepath.Join(s.Dir(cat), cat.Filename(date))
}

// EnsureDir idempotently creates the category's output directory.
func (s *Store) EnsureDir(cat schema.Category) error {
	if err := os.MkdirAll(s.Dir(cat), 0o755); err != nil {
		return fmt.Errorf("create %s directory: %w", cat, err)
	}
	return nil
}

// Exists reports whether the artifact for the date is present. A partial file
// left by an interrupted write still reads as present.
func (s *Store) Exists(cat schema.Category, date string) bool {
	info, err := os.Stat(s.Path(cat, date))
	return err == nil && !info.IsDir()
}

// Write creates or overwrites the artifact unconditionally. Callers wanting
// skip-on-exists semantics check Exists first.
func (s *Store) Write(cat schema.Category, date, content string) error {
	if err := os.WriteFile(s.Path(cat, date), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s artifact for %s: %w", cat, date, err)
	}
	return nil
}

// Read returns the artifact content for a date.
func (s *Store) Read(cat schema.Category, date string) (string, error) {
	data, err := os.ReadFile(s.Path(cat, date))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadAll lists the category's artifacts sorted newest-first by date. Files
// whose names do not carry a parseable date are ignored.
func (s *Store) ReadAll(cat schema.Category) ([]schema.DaySummary, error) {
	entries, err := os.ReadDir(s.Dir(cat))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []schema.DaySummary
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		date, ok := dateFromFilename(cat, e.Name())
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir(cat), e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, schema.DaySummary{Date: date, Content: string(data)})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}

// Status summarizes the artifact inventory for every category.
func (s *Store) Status() []schema.CategoryStatus {
	var statuses []schema.CategoryStatus
	for _, cat := range schema.Categories {
		st := schema.CategoryStatus{Category: cat}
		entries, err := os.ReadDir(s.Dir(cat))
		if err == nil {
			var dates []string
			for _, e := range entries {
				if date, ok := dateFromFilename(cat, e.Name()); ok {
					dates = append(dates, date)
				}
			}
			sort.Strings(dates)
			st.Count = len(dates)
			if len(dates) > 0 {
				st.Oldest = dates[0]
				st.Newest = dates[len(dates)-1]
			}
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// dateFromFilename extracts and validates the date key encoded in an artifact
// filename.
func dateFromFilename(cat schema.Category, name string) (string, bool) {
	prefix := cat.Prefix() + "-"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".md") {
		return "", false
	}
	date := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".md")
	if _, err := time.Parse(schema.ISODate, date); err != nil {
		return "", false
	}
	return date, true
}
