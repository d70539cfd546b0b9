// Package metrics collects conversion counters on a private prometheus
// registry. The CLI prints a text-format snapshot after a run when
// metrics are enabled; there is no scrape endpoint in a one-shot tool.
package metrics

import (
	"bytes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	registry = prometheus.NewRegistry()

	// RecordsDecoded counts call records successfully decoded from JSON.
	RecordsDecoded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calllog_records_decoded_total",
		Help: "Call records successfully decoded from the JSON export.",
	})

	// DecodeFailures counts records that failed to decode.
	DecodeFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calllog_decode_failures_total",
		Help: "Call records that failed to decode.",
	})

	// RowsWritten counts CSV data rows emitted (header excluded).
	RowsWritten = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calllog_csv_rows_written_total",
		Help: "CSV data rows written to the output.",
	})

	// RowsSkipped counts records dropped by the date range filter.
	RowsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calllog_csv_rows_skipped_total",
		Help: "Call records skipped by the date range filter.",
	})
)

func init() {
	registry.MustRegister(RecordsDecoded, DecodeFailures, RowsWritten, RowsSkipped)
}

// Snapshot renders all counters in the prometheus text exposition format.
func Snapshot() (string, error) {
	mfs, err := registry.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
