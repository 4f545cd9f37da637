package inference

import (
	"context"
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giftwiseapp/giftwise-server/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionServer returns an httptest server that answers every chat
// completion with the given message content.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.UnmarshalRead(r.Body, &req))
		assert.NotEmpty(t, req.Model)
		require.Len(t, req.Messages, 1)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.MarshalWrite(w, resp)
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "deepseek-ai/DeepSeek-V2.5",
		Timeout: 5 * time.Second,
		MaxTags: 3,
	}, slog.New(slog.DiscardHandler))
}

func TestInferTags(t *testing.T) {
	srv := completionServer(t, `{"tags": ["Sports", "Coffee"], "strategy": "Start with the racket."}`)
	defer srv.Close()

	c := newTestClient(srv.URL)

	sel, err := c.InferTags(context.Background(),
		"loves tennis and coffee",
		[]string{"Sports", "Coffee", "Books", "Electronics"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sports", "Coffee"}, sel.Tags)
	assert.Equal(t, "Start with the racket.", sel.Strategy)
}

func TestInferTagsBareArrayResponse(t *testing.T) {
	srv := completionServer(t, `["Books"]`)
	defer srv.Close()

	c := newTestClient(srv.URL)

	sel, err := c.InferTags(context.Background(), "a big reader", []string{"Books", "Sports"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Books"}, sel.Tags)
}

func TestInferTagsMalformedContent(t *testing.T) {
	srv := completionServer(t, "Sorry, I can't answer that in JSON.")
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.InferTags(context.Background(), "anything", []string{"Sports"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMalformedModelOutput)
	// Not an availability problem; the provider answered.
	assert.NotErrorIs(t, err, errors.ErrInferenceUnavailable)
}

func TestInferTagsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.InferTags(context.Background(), "anything", []string{"Sports"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInferenceUnavailable)
}

func TestInferTagsMissingAPIKey(t *testing.T) {
	c := NewClient(Config{
		BaseURL: "http://localhost:0",
		Model:   "deepseek-ai/DeepSeek-V2.5",
	}, nil)

	_, err := c.InferTags(context.Background(), "anything", []string{"Sports"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInferenceUnavailable)
}

func TestInferTagsInputValidation(t *testing.T) {
	c := newTestClient("http://localhost:0")

	_, err := c.InferTags(context.Background(), "   ", []string{"Sports"})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, err = c.InferTags(context.Background(), "loves tennis", nil)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestInferTagsTransportError(t *testing.T) {
	// Closed server = connection refused.
	srv := completionServer(t, "[]")
	srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.InferTags(context.Background(), "anything", []string{"Sports"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInferenceUnavailable)
}
