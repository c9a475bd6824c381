package csvbind

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Row outcomes used as the "outcome" label of Metrics.Rows.
const (
	OutcomeEmitted    = "emitted"
	OutcomeFiltered   = "filtered"
	OutcomeHeader     = "header"
	OutcomeConversion = "conversion"
)

// Metrics holds Prometheus metrics shared by any number of parsers.
type Metrics struct {
	Bytes            prometheus.Counter
	Records          prometheus.Counter
	Rows             *prometheus.CounterVec
	ConversionErrors prometheus.Counter
	Failures         *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics with the provided registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	bytesRead := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "csvbind_bytes_total",
		Help: "Total bytes fed to parsers",
	})

	records := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "csvbind_records_total",
		Help: "Total records seen by parsers",
	})

	rows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "csvbind_rows_total",
		Help: "Total records by outcome",
	}, []string{"outcome"})

	conversionErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "csvbind_conversion_errors_total",
		Help: "Total fields that failed to convert",
	})

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "csvbind_failures_total",
		Help: "Total parses that ended in a terminal failure, by code",
	}, []string{"code"})

	reg.MustRegister(bytesRead, records, rows, conversionErrors, failures)

	return &Metrics{
		Bytes:            bytesRead,
		Records:          records,
		Rows:             rows,
		ConversionErrors: conversionErrors,
		Failures:         failures,
	}
}
