// Package render writes decoded call records as CSV: a header row of
// capitalized column labels followed by one formatted row per record
// inside the requested date range. Output is comma separated with LF
// line endings and minimal quoting.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/evilscientress/android-call-log-converter/internal/metrics"
	"github.com/evilscientress/android-call-log-converter/internal/model"
)

// DefaultFields is the column set used when the caller selects none.
var DefaultFields = []string{
	"date", "time", "type", "duration", "number", "display_name",
	"numbertype", "presentation", "missed_reason", "block_reason",
	"features", "countryiso",
}

// Options controls column selection and date range filtering.
type Options struct {
	// Fields is the ordered column list; nil selects DefaultFields.
	Fields []string
	// Start is midnight of the first day to include (in the display
	// timezone); records before it are out of range.
	Start *time.Time
	// Stop is midnight of the last day to include; the filter keeps
	// everything before the following midnight.
	Stop *time.Time
	// ScanAll disables the early exit on the first record older than
	// Start and filters the whole sequence instead. Use it when the
	// input may not be sorted newest-first.
	ScanAll bool
}

// ColumnError reports requested column names that are not call record
// fields. It is raised before any row is written.
type ColumnError struct {
	Columns []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("unknown field(s) in column list: %s", strings.Join(e.Columns, ", "))
}

// Write renders calls as CSV into w. The input sequence is expected to
// be sorted by date descending, as written by the exporting device:
// unless Options.ScanAll is set, rendering stops at the first record
// older than Options.Start instead of scanning the rest.
func Write(w io.Writer, calls []model.CallRecord, opts Options) error {
	cols := opts.Fields
	if cols == nil {
		cols = DefaultFields
	}
	if err := validateColumns(cols); err != nil {
		return err
	}

	// "date" renders date-only when a separate "time" column exists.
	dateOnly := false
	for _, c := range cols {
		if c == "time" {
			dateOnly = true
			break
		}
	}

	var stop time.Time
	if opts.Stop != nil {
		stop = opts.Stop.AddDate(0, 0, 1)
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = headerLabel(c)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range calls {
		rec := &calls[i]
		if opts.Start != nil && rec.Date.Before(*opts.Start) {
			if opts.ScanAll {
				metrics.RowsSkipped.Inc()
				continue
			}
			// Sorted newest-first, so every remaining record is older.
			break
		}
		if opts.Stop != nil && !rec.Date.Before(stop) {
			metrics.RowsSkipped.Inc()
			continue
		}

		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = formatColumn(rec, c, dateOnly)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		metrics.RowsWritten.Inc()
	}

	cw.Flush()
	return cw.Error()
}

// Render is Write into a string, for callers without an output sink.
func Render(calls []model.CallRecord, opts Options) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, calls, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func validateColumns(cols []string) error {
	var unknown []string
	for _, c := range cols {
		if c == "date" || c == "time" {
			continue
		}
		if _, ok := formatters[c]; !ok {
			unknown = append(unknown, c)
		}
	}
	if len(unknown) > 0 {
		return &ColumnError{Columns: unknown}
	}
	return nil
}

// headerLabel turns a field name into its display label: separators
// become spaces and each word is capitalized.
func headerLabel(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func formatColumn(r *model.CallRecord, name string, dateOnly bool) string {
	switch name {
	case "date":
		if dateOnly {
			return r.Date.Format("02.01.2006")
		}
		return r.Date.Format("02.01.2006 15:04:05")
	case "time":
		return r.Date.Format("15:04:05")
	}
	return formatters[name](r)
}
