package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/delorean/internal/app/render"
	"github.com/slok/delorean/internal/chart"
	"github.com/slok/delorean/internal/http/api"
	"github.com/slok/delorean/internal/http/api/apimock"
	loglogrus "github.com/slok/delorean/internal/log/logrus"
	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

type mocks struct {
	RenderApp *apimock.RenderApp
}

func newMocks(t *testing.T) mocks {
	return mocks{
		RenderApp: apimock.NewRenderApp(t),
	}
}

func newTestAPIHandler(t *testing.T, m mocks) http.Handler {
	h, err := api.NewAPI(api.APIConfig{
		RenderApp: m.RenderApp,
	})
	require.NoError(t, err)

	return h
}

func TestHandlerRender(t *testing.T) {
	tests := map[string]struct {
		request    func() *http.Request
		mock       func(m mocks)
		expHeaders http.Header
		expBody    string
		expCode    int
	}{
		"Rendering a dataset should reply with the SVG document.": {
			request: func() *http.Request {
				body := `{"data": {"2011-01-01": 1}, "config": {"width": 400}}`
				return httptest.NewRequest(http.MethodPost, "/api/v1/render?title=Requests", strings.NewReader(body))
			},
			mock: func(m mocks) {
				expReq := func(r render.RenderRequest) bool {
					return string(r.Data) == `{"2011-01-01": 1}` &&
						string(r.ConfigOverrides) == `{"width": 400}` &&
						r.Title == "Requests" &&
						!r.Static
				}
				m.RenderApp.On("Render", mock.Anything, mock.MatchedBy(expReq)).Once().
					Run(func(args mock.Arguments) {
						_, _ = args.Get(1).(render.RenderRequest).Out.Write([]byte("<svg></svg>"))
					}).
					Return(&render.RenderResponse{Bytes: 11}, nil)
			},
			expHeaders: http.Header{
				"Content-Type":   {"image/svg+xml"},
				"Content-Length": {"11"},
			},
			expBody: "<svg></svg>",
			expCode: 200,
		},

		"Rendering without config should not pass overrides.": {
			request: func() *http.Request {
				body := `{"data": {"2011-01-01": 1}, "config": null}`
				return httptest.NewRequest(http.MethodPost, "/api/v1/render?static=true", strings.NewReader(body))
			},
			mock: func(m mocks) {
				expReq := func(r render.RenderRequest) bool { return r.ConfigOverrides == nil && r.Static }
				m.RenderApp.On("Render", mock.Anything, mock.MatchedBy(expReq)).Once().Return(&render.RenderResponse{}, nil)
			},
			expHeaders: http.Header{
				"Content-Type":   {"image/svg+xml"},
				"Content-Length": {"0"},
			},
			expCode: 200,
		},

		"An invalid body should reply with a bad request.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(`{"data": `))
			},
			mock: func(m mocks) {},
			expHeaders: http.Header{
				"Content-Type": {"application/json"},
			},
			expBody: `{"error":"invalid request body: unexpected EOF"}` + "\n",
			expCode: 400,
		},

		"Unknown body fields should reply with a bad request.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(`{"datas": {}}`))
			},
			mock: func(m mocks) {},
			expHeaders: http.Header{
				"Content-Type": {"application/json"},
			},
			expBody: `{"error":"invalid request body: json: unknown field \"datas\""}` + "\n",
			expCode: 400,
		},

		"A missing dataset should reply with a bad request.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(`{}`))
			},
			mock: func(m mocks) {},
			expHeaders: http.Header{
				"Content-Type": {"application/json"},
			},
			expBody: `{"error":"missing data: empty dataset"}` + "\n",
			expCode: 400,
		},

		"Dataset errors should reply with a bad request.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(`{"data": {"2011-01-01": [1], "2011-01-02": [1, 2]}}`))
			},
			mock: func(m mocks) {
				err := fmt.Errorf("could not load dataset: %w", commonerrors.ErrInconsistentSeriesArity)
				m.RenderApp.On("Render", mock.Anything, mock.Anything).Once().Return(nil, err)
			},
			expHeaders: http.Header{
				"Content-Type": {"application/json"},
			},
			expBody: `{"error":"could not load dataset: inconsistent series arity"}` + "\n",
			expCode: 400,
		},

		"Unexpected errors should reply with an internal error.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(`{"data": {"2011-01-01": 1}}`))
			},
			mock: func(m mocks) {
				m.RenderApp.On("Render", mock.Anything, mock.Anything).Once().Return(nil, fmt.Errorf("something"))
			},
			expHeaders: http.Header{
				"Content-Type": {"application/json"},
			},
			expBody: `{"error":"something"}` + "\n",
			expCode: 500,
		},

		"Only POST should be allowed.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/api/v1/render", nil)
			},
			mock:    func(m mocks) {},
			expCode: 405,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			m := newMocks(t)
			test.mock(m)

			h := newTestAPIHandler(t, m)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, test.request())

			assert.Equal(test.expCode, w.Code)
			if test.expHeaders != nil {
				assert.Equal(test.expHeaders, w.Header())
			}
			assert.Equal(test.expBody, w.Body.String())
		})
	}
}

func TestHandlerValidate(t *testing.T) {
	tests := map[string]struct {
		request func() *http.Request
		mock    func(m mocks)
		expBody string
		expCode int
	}{
		"A valid dataset should reply with its size.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader(`{"data": {"2011-01-01": [1, 2]}}`))
			},
			mock: func(m mocks) {
				expReq := render.ValidateRequest{Data: []byte(`{"2011-01-01": [1, 2]}`)}
				m.RenderApp.On("Validate", mock.Anything, expReq).Once().Return(&render.ValidateResponse{Points: 1, Series: 2}, nil)
			},
			expBody: `{"points":1,"series":2}` + "\n",
			expCode: 200,
		},

		"An invalid config should reply with a bad request.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader(`{"data": {"2011-01-01": 1}, "config": {"width": -1}}`))
			},
			mock: func(m mocks) {
				m.RenderApp.On("Validate", mock.Anything, mock.Anything).Once().Return(nil, commonerrors.ErrInvalidConfig)
			},
			expBody: `{"error":"invalid chart configuration"}` + "\n",
			expCode: 400,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			m := newMocks(t)
			test.mock(m)

			h := newTestAPIHandler(t, m)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, test.request())

			assert.Equal(test.expCode, w.Code)
			assert.Equal("application/json", w.Header().Get("Content-Type"))
			assert.Equal(test.expBody, w.Body.String())
		})
	}
}

func TestIntegrationAPIRender(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	svc, err := render.NewService(render.ServiceConfig{})
	require.NoError(err)
	h, err := api.NewAPI(api.APIConfig{RenderApp: svc})
	require.NoError(err)

	body := `{"data": {"2011-01-01": 1, "2011-01-02": 5, "2011-01-03": 3}, "config": {"grid_y": true}}`
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(body)))

	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(w.Body.String(), `<svg width="698" height="200"`)
	assert.Contains(w.Body.String(), `class="delorean-slot"`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(`{"data": {"tomorrow": 1}}`)))
	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestLogMiddleware(t *testing.T) {
	tests := map[string]struct {
		request  func() *http.Request
		mock     func(m mocks)
		expLevel string
		expKv    map[string]any
	}{
		"A rendered chart should be logged with its size.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(`{"data": {"2011-01-01": [1, 2]}}`))
			},
			mock: func(m mocks) {
				scene := &chart.Scene{
					Slots:  make([]chart.Slot, 3),
					Series: make([]chart.SeriesLayout, 2),
				}
				m.RenderApp.On("Render", mock.Anything, mock.Anything).Once().Return(&render.RenderResponse{Scene: scene}, nil)
			},
			expLevel: "debug",
			expKv: map[string]any{
				"path":   "/api/v1/render",
				"method": "POST",
				"status": float64(200),
				"bytes":  float64(0),
				"points": float64(3),
				"series": float64(2),
			},
		},

		"A validated chart should be logged with its size.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader(`{"data": {"2011-01-01": 1}}`))
			},
			mock: func(m mocks) {
				m.RenderApp.On("Validate", mock.Anything, mock.Anything).Once().Return(&render.ValidateResponse{Points: 7, Series: 1}, nil)
			},
			expLevel: "debug",
			expKv: map[string]any{
				"path":   "/api/v1/validate",
				"status": float64(200),
				"points": float64(7),
				"series": float64(1),
			},
		},

		"A failed render should be logged as a warning without chart size.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(`{"data": {"2011-01-01": 1}}`))
			},
			mock: func(m mocks) {
				m.RenderApp.On("Render", mock.Anything, mock.Anything).Once().Return(nil, fmt.Errorf("something"))
			},
			expLevel: "warning",
			expKv: map[string]any{
				"status": float64(500),
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			m := newMocks(t)
			test.mock(m)

			var logs bytes.Buffer
			l := logrus.New()
			l.Out = &logs
			l.SetLevel(logrus.DebugLevel)
			l.SetFormatter(&logrus.JSONFormatter{})

			h, err := api.NewAPI(api.APIConfig{
				RenderApp: m.RenderApp,
				Logger:    loglogrus.NewLogrus(logrus.NewEntry(l)),
			})
			require.NoError(err)

			h.ServeHTTP(httptest.NewRecorder(), test.request())

			// The request log is the last line.
			lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
			got := map[string]any{}
			require.NoError(json.Unmarshal([]byte(lines[len(lines)-1]), &got))

			assert.Equal(test.expLevel, got["level"])
			for k, v := range test.expKv {
				assert.Equal(v, got[k], k)
			}
			if test.expLevel == "warning" {
				assert.NotContains(got, "points")
			}
		})
	}
}
