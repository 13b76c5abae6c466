package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/slok/delorean/internal/app/render"
	"github.com/slok/delorean/internal/log"
	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

type renderRequestBody struct {
	Data   json.RawMessage `json:"data"`
	Config json.RawMessage `json:"config"`
}

func (a api) handlerRender() http.HandlerFunc {
	const (
		queryParamStatic = "static"
		queryParamTitle  = "title"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := decodeRenderRequestBody(w, r)
		if err != nil {
			a.replyError(w, r, http.StatusBadRequest, err)
			return
		}

		static, _ := strconv.ParseBool(r.URL.Query().Get(queryParamStatic))

		// Render on a buffer first so a failed render can still be replied with its status.
		var out bytes.Buffer
		resp, err := a.renderApp.Render(ctx, render.RenderRequest{
			Data:            body.Data,
			ConfigOverrides: configOverrides(body.Config),
			Title:           r.URL.Query().Get(queryParamTitle),
			Static:          static,
			Out:             &out,
		})
		if err != nil {
			a.replyError(w, r, errorStatus(err), err)
			return
		}
		if resp != nil && resp.Scene != nil {
			setChartStats(ctx, len(resp.Scene.Slots), len(resp.Scene.Series))
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Content-Length", strconv.Itoa(out.Len()))
		w.WriteHeader(http.StatusOK)
		_, err = out.WriteTo(w)
		if err != nil {
			a.logger.Errorf("could not write response: %s", err)
		}
	})
}

func (a api) handlerValidate() http.HandlerFunc {
	type jsonResponse struct {
		Points int `json:"points"`
		Series int `json:"series"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeRenderRequestBody(w, r)
		if err != nil {
			a.replyError(w, r, http.StatusBadRequest, err)
			return
		}

		resp, err := a.renderApp.Validate(r.Context(), render.ValidateRequest{
			Data:            body.Data,
			ConfigOverrides: configOverrides(body.Config),
		})
		if err != nil {
			a.replyError(w, r, errorStatus(err), err)
			return
		}

		setChartStats(r.Context(), resp.Points, resp.Series)
		a.replyJSON(w, http.StatusOK, jsonResponse{Points: resp.Points, Series: resp.Series})
	})
}

func decodeRenderRequestBody(w http.ResponseWriter, r *http.Request) (*renderRequestBody, error) {
	body := &renderRequestBody{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	if len(body.Data) == 0 {
		return nil, fmt.Errorf("missing data: %w", commonerrors.ErrEmptyDataset)
	}

	return body, nil
}

// configOverrides ignores null configs, any other JSON value is a valid YAML document.
func configOverrides(raw json.RawMessage) []byte {
	if string(raw) == "null" {
		return nil
	}
	return raw
}

// errorStatus maps the render errors caused by the request to a bad request.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, commonerrors.ErrInvalidDateFormat),
		errors.Is(err, commonerrors.ErrEmptyDataset),
		errors.Is(err, commonerrors.ErrInconsistentSeriesArity),
		errors.Is(err, commonerrors.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (a api) replyError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := a.logger.WithValues(log.Kv{"url": r.URL, "status": status})
	if status >= http.StatusInternalServerError {
		logger.Errorf("Request failed: %s", err)
	} else {
		logger.Debugf("Bad request: %s", err)
	}

	a.replyJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

func (a api) replyJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		a.logger.Errorf("could not write response: %s", err)
	}
}
