package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidkit/handler"
	"github.com/dmitrymomot/liquidkit/pkg/binder"
	"github.com/dmitrymomot/liquidkit/pkg/logger"
)

type echoRequest struct {
	Input string `json:"input"`
}

var errNoSuchThing = errors.New("no such thing")

func mapNoSuchThing(err error) (handler.HTTPError, bool) {
	if errors.Is(err, errNoSuchThing) {
		return handler.HTTPError{Code: http.StatusNotFound, Key: "no_such_thing"}, true
	}
	return handler.HTTPError{}, false
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func serve(h http.HandlerFunc, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := func(_ handler.Context, req echoRequest) handler.Response {
		switch req.Input {
		case "missing":
			return handler.JSONError(fmt.Errorf("lookup: %w", errNoSuchThing), mapNoSuchThing)
		case "nil":
			return nil
		}
		return handler.JSON(map[string]string{"result": strings.ToUpper(req.Input)})
	}

	h := handler.Wrap(echo,
		handler.WithBinder[echoRequest](binder.BindJSON(64)),
		handler.WithErrorHandler[echoRequest](handler.NewErrorHandler(logger.Nop(), mapNoSuchThing)),
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, `{"input":"hi"}`, "application/json")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		body := decode(t, rec)
		assert.Equal(t, map[string]any{"result": "HI"}, body.Data)
		assert.Nil(t, body.Error)
	})

	t.Run("mapped domain error", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, `{"input":"missing"}`, "application/json")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "no_such_thing", body.Error.Code)
		assert.Equal(t, "lookup: no such thing", body.Error.Message)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, `{"input":"nil"}`, "application/json")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "internal_server_error", body.Error.Code)
		assert.Equal(t, "Internal Server Error", body.Error.Message)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		status      int
		code        string
	}{
		{"wrong content type", `{"input":"hi"}`, "text/plain", http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"missing content type", `{"input":"hi"}`, "", http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"malformed json", `{"input":`, "application/json", http.StatusBadRequest, "bad_request"},
		{"too large", `{"input":"` + strings.Repeat("x", 100) + `"}`, "application/json", http.StatusRequestEntityTooLarge, "request_entity_too_large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := serve(h, tt.body, tt.contentType)
			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestWrapDecorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[echoRequest] {
		return func(next handler.HandlerFunc[echoRequest]) handler.HandlerFunc[echoRequest] {
			return func(ctx handler.Context, req echoRequest) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(func(handler.Context, echoRequest) handler.Response {
		order = append(order, "handler")
		return handler.JSON("ok", handler.WithJSONStatus(http.StatusAccepted), handler.WithJSONMeta(map[string]any{"n": 1}))
	}, handler.WithDecorators(mark("outer"), mark("inner")))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ok", body.Data)
	assert.Equal(t, map[string]any{"n": float64(1)}, body.Meta)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		code    int
		key     string
		message string
	}{
		{"bare http error", handler.ErrNotFound, http.StatusNotFound, "not_found", "Not Found"},
		{"wrapped http error", fmt.Errorf("%w: preset %q", handler.ErrNotFound, "x"), http.StatusNotFound, "not_found", `not_found: preset "x"`},
		{"binder error", fmt.Errorf("%w: eof", binder.ErrInvalidJSON), http.StatusBadRequest, "bad_request", "invalid JSON: eof"},
		{"mapped", errNoSuchThing, http.StatusNotFound, "no_such_thing", "no such thing"},
		{"unknown", errors.New("db password leaked"), http.StatusInternalServerError, "internal_server_error", "Internal Server Error"},
		{"server http error hides text", fmt.Errorf("%w: boom", handler.ErrInternalServerError), http.StatusInternalServerError, "internal_server_error", "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.Classify(tt.err, mapNoSuchThing)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.key, info.Key)
			assert.Equal(t, tt.message, info.Message)
		})
	}
}

func TestRouteFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h    http.HandlerFunc
		code int
		key  string
	}{
		{"not found", handler.NotFound, http.StatusNotFound, "not_found"},
		{"method not allowed", handler.MethodNotAllowed, http.StatusMethodNotAllowed, "method_not_allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			tt.h(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

			assert.Equal(t, tt.code, rec.Code)
			var resp handler.JSONResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.key, resp.Error.Code)
			assert.Equal(t, http.StatusText(tt.code), resp.Error.Message)
		})
	}
}
