// Package metrics метрики прогона для textfile-коллектора node_exporter.
package metrics

import (
	"time"

	"github.com/Spok95/labour-seed/internal/seed"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "labourseed"

type Recorder struct {
	reg *prometheus.Registry

	rowsRead   prometheus.Gauge
	rowsSkip   prometheus.Gauge
	labours    prometheus.Gauge
	categories prometheus.Gauge
	roots      prometheus.Gauge
	lastRun    prometheus.Gauge
}

func New() *Recorder {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	r := &Recorder{
		reg:        prometheus.NewRegistry(),
		rowsRead:   gauge("rows_read", "Data rows read from the workbook."),
		rowsSkip:   gauge("rows_skipped", "Rows dropped because the name was empty."),
		labours:    gauge("labours", "Labour rows written to the seed script."),
		categories: gauge("categories", "Categories written to the seed script."),
		roots:      gauge("root_categories", "Top-level categories."),
		lastRun:    gauge("last_run_timestamp_seconds", "Unix time of the last successful run."),
	}
	r.reg.MustRegister(r.rowsRead, r.rowsSkip, r.labours, r.categories, r.roots, r.lastRun)
	return r
}

func (r *Recorder) Observe(s seed.Summary, at time.Time) {
	r.rowsRead.Set(float64(s.Read))
	r.rowsSkip.Set(float64(s.Skipped))
	r.labours.Set(float64(s.Labours))
	r.categories.Set(float64(s.Categories))
	r.roots.Set(float64(s.Roots))
	r.lastRun.Set(float64(at.Unix()))
}

// WriteTextfile атомарно пишет метрики в файл (.prom).
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
