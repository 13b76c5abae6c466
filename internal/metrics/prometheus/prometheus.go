package prometheus

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Prefix = "delorean"
)

type Recorder struct {
	reg prometheus.Registerer

	renderLatency      *prometheus.HistogramVec
	renderPoints       prometheus.Histogram
	renderStageLatency *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		reg: reg,

		renderLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Prefix,
				Name:      "render_duration_seconds",
				Help:      "Duration histogram of chart renders.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"success"},
		),

		renderPoints: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Prefix,
				Name:      "render_points",
				Help:      "Histogram of the number of time points of the rendered charts.",
				Buckets:   []float64{10, 45, 90, 180, 365, 730, 1460},
			},
		),

		renderStageLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Prefix,
				Subsystem: "render",
				Name:      "stage_duration_seconds",
				Help:      "Duration histogram of the chart render stages.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"stage", "success"},
		),
	}

	r.init()

	return *r
}

func (r Recorder) init() {
	// Register our collectors.
	r.reg.MustRegister(
		r.renderLatency,
		r.renderPoints,
		r.renderStageLatency,
	)
}

func (r Recorder) MeasureRender(ctx context.Context, t time.Duration, points int, err error) {
	r.renderLatency.WithLabelValues(strconv.FormatBool(err == nil)).Observe(t.Seconds())
	if err == nil {
		r.renderPoints.Observe(float64(points))
	}
}

func (r Recorder) MeasureRenderStageDuration(ctx context.Context, stage string, t time.Duration, err error) {
	r.renderStageLatency.WithLabelValues(stage, strconv.FormatBool(err == nil)).Observe(t.Seconds())
}
