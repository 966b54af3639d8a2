package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	scansTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "docscan_scans_total",
		Help: "Total scan sessions completed",
	})
	documentsScanned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "docscan_documents_scanned_total",
		Help: "Total documents successfully scanned",
	})
	documentsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "docscan_documents_skipped_total",
		Help: "Total documents skipped as unreadable",
	})
	matchesFound = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "docscan_matches_total",
		Help: "Total keyword match records produced",
	})
	scanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "docscan_scan_duration_seconds",
		Help:    "Wall time of one full scan, upload parsing included",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})
)

var registerOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(scansTotal, documentsScanned, documentsSkipped, matchesFound, scanDuration)
	})
}

// RecordScan records the outcome of one completed scan session.
func RecordScan(documents, skipped, matches int, elapsed time.Duration) {
	scansTotal.Inc()
	documentsScanned.Add(float64(documents))
	documentsSkipped.Add(float64(skipped))
	matchesFound.Add(float64(matches))
	scanDuration.Observe(elapsed.Seconds())
}
