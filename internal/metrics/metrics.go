package metrics

import (
	"context"
	"time"
)

//go:generate mockery --case underscore --output metricsmock --outpkg metricsmock --name Recorder

// Recorder knows how to measure the chart renders.
type Recorder interface {
	MeasureRender(ctx context.Context, t time.Duration, points int, err error)
	MeasureRenderStageDuration(ctx context.Context, stage string, t time.Duration, err error)
}

type noopRecorder bool

var NoopRecorder Recorder = noopRecorder(false)

func (r noopRecorder) MeasureRender(ctx context.Context, t time.Duration, points int, err error) {}

func (r noopRecorder) MeasureRenderStageDuration(ctx context.Context, stage string, t time.Duration, err error) {
}
