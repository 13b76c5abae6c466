package api

import (
	"context"
	"net/http"
	"time"

	"github.com/slok/delorean/internal/log"
)

type chiMiddleware = func(next http.Handler) http.Handler

func (a api) registerGlobalMiddlewares() {
	a.router.Use(
		a.logMiddleware(),
	)
}

// chartStats are the chart figures a handler reports for the request log.
type chartStats struct {
	points int
	series int
}

type chartStatsKey struct{}

// setChartStats reports the rendered chart size of the request, if the request is logged.
func setChartStats(ctx context.Context, points, series int) {
	if st, ok := ctx.Value(chartStatsKey{}).(*chartStats); ok {
		st.points = points
		st.series = series
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// logMiddleware sets the request log values on the context, so the render service logs
// carry them, and logs every served request with its status and chart size.
func (a api) logMiddleware() chiMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t0 := time.Now()
			stats := &chartStats{}
			ctx := context.WithValue(r.Context(), chartStatsKey{}, stats)
			ctx = a.logger.SetValuesOnCtx(ctx, log.Kv{
				"path":   r.URL.Path,
				"method": r.Method,
			})

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			logger := a.logger.WithCtxValues(ctx).WithValues(log.Kv{
				"status":   rec.status,
				"bytes":    rec.bytes,
				"duration": time.Since(t0).String(),
			})
			if stats.points > 0 {
				logger = logger.WithValues(log.Kv{"points": stats.points, "series": stats.series})
			}

			if rec.status >= http.StatusInternalServerError {
				logger.Warningf("Request failed")
				return
			}
			logger.Debugf("Request served")
		})
	}
}
