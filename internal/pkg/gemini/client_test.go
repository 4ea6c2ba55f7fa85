package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func modelReply(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Contents)

		reply := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": body}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reply)
	}
}

func TestSuggestPaymentMethod(t *testing.T) {
	srv := httptest.NewServer(modelReply(t, `{"recommendedMethod":"Cash","reason":"Paling umum."}`))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gemini-2.5-flash", time.Second)
	got, err := c.SuggestPaymentMethod(context.Background(), "prompt", []string{"Cash", "Transfer"})
	assert.NoError(t, err)
	assert.Equal(t, "Cash", got.RecommendedMethod)
	assert.Equal(t, "Paling umum.", got.Reason)
}

func TestSuggestPaymentMethod_MethodOutsideAllowedSet(t *testing.T) {
	srv := httptest.NewServer(modelReply(t, `{"recommendedMethod":"Cek","reason":"?"}`))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gemini-2.5-flash", time.Second)
	_, err := c.SuggestPaymentMethod(context.Background(), "prompt", []string{"Cash"})
	assert.ErrorIs(t, err, ErrInvalidReply)
}

func TestSuggestPaymentMethod_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(modelReply(t, "not json"))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gemini-2.5-flash", time.Second)
	_, err := c.SuggestPaymentMethod(context.Background(), "prompt", []string{"Cash"})
	assert.ErrorIs(t, err, ErrInvalidReply)
}

func TestSuggestPaymentMethod_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gemini-2.5-flash", time.Second)
	_, err := c.SuggestPaymentMethod(context.Background(), "prompt", []string{"Cash"})
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestSuggestPaymentMethod_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gemini-2.5-flash", time.Second)
	_, err := c.SuggestPaymentMethod(context.Background(), "prompt", []string{"Cash"})
	assert.Error(t, err)
}
