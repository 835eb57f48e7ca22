package data

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"cinetalk/internal/biz"
	"cinetalk/internal/conf"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompletionServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestCompletionClient(url string, retries int32) biz.CompletionClient {
	return NewCompletionClient(&conf.Completion{
		Url:        url,
		ApiKey:     "sk-test",
		MaxRetries: retries,
		Timeout:    conf.NewDuration(0),
	}, log.DefaultLogger)
}

func TestCompletionClientSuccess(t *testing.T) {
	srv, hits := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var req completionRequest
		assert.NoError(t, json.Unmarshal(raw, &req))
		assert.Equal(t, defaultCompletionModel, req.Model)
		assert.EqualValues(t, defaultCompletionMaxTokens, req.MaxTokens)
		assert.Equal(t, "Describe the rooftop", req.Prompt)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"text":"  A rooftop in Tokyo."}]}`))
	})

	text, err := newTestCompletionClient(srv.URL, 2).Complete(t.Context(), "Describe the rooftop")
	require.NoError(t, err)
	assert.Equal(t, "  A rooftop in Tokyo.", text)
	assert.EqualValues(t, 1, hits.Load())
}

func TestCompletionClientDoesNotRetryClientErrors(t *testing.T) {
	srv, hits := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	})

	_, err := newTestCompletionClient(srv.URL, 3).Complete(t.Context(), "x")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errors.Code(err))
	assert.Equal(t, biz.ReasonUpstreamFailure, errors.Reason(err))
	assert.Equal(t, "Incorrect API key provided", errors.FromError(err).Message)
	assert.EqualValues(t, 1, hits.Load())
}

func TestCompletionClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv, hits := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"text":"third time"}]}`))
	})

	text, err := newTestCompletionClient(srv.URL, 2).Complete(t.Context(), "x")
	require.NoError(t, err)
	assert.Equal(t, "third time", text)
	assert.EqualValues(t, 3, hits.Load())
}

func TestCompletionClientEmptyChoices(t *testing.T) {
	srv, hits := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := newTestCompletionClient(srv.URL, 2).Complete(t.Context(), "x")
	assert.Equal(t, http.StatusBadGateway, errors.Code(err))
	assert.EqualValues(t, 1, hits.Load())
}

func TestCompletionClientOpensBreaker(t *testing.T) {
	srv, hits := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := newTestCompletionClient(srv.URL, 0)

	for i := 0; i < 5; i++ {
		_, err := client.Complete(t.Context(), "x")
		assert.Equal(t, http.StatusBadGateway, errors.Code(err))
	}

	_, err := client.Complete(t.Context(), "x")
	assert.Equal(t, http.StatusServiceUnavailable, errors.Code(err))
	assert.Equal(t, biz.ReasonUpstreamUnavailable, errors.Reason(err))
	assert.EqualValues(t, 5, hits.Load())
}
