package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatClientComplete(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		assert.Equal(t, "/chat/completions", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Zonnig weekend!"}}]}`))
	}))
	defer server.Close()

	client, err := NewChatClient("sk-test", server.URL, 5*time.Second)
	require.NoError(t, err)

	content, err := client.Complete(context.Background(), "test-model", "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "Zonnig weekend!", content)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user prompt", gotReq.Messages[1].Content)
}

func TestChatClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client, err := NewChatClient("sk-test", server.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "test-model", "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
}

func TestChatClientNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client, err := NewChatClient("sk-test", server.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "test-model", "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestNewChatClientRequiresKey(t *testing.T) {
	_, err := NewChatClient("  ", "https://api.example.com/v1", time.Second)
	assert.Error(t, err)
}
