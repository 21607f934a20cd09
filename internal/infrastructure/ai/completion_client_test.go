package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DisabledWithoutKey(t *testing.T) {
	assert.Nil(t, NewClient("http://localhost", "", "gpt-4"))
	assert.NotNil(t, NewClient("http://localhost", "sk-test", "gpt-4"))
}

func TestClient_Complete(t *testing.T) {
	var gotAuth string
	var gotReq completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Share your link!"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", "gpt-4")
	reply, err := client.Complete(context.Background(), "system prompt", "user question")
	require.NoError(t, err)
	assert.Equal(t, "Share your link!", reply)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system prompt", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestClient_Complete_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", "gpt-4")
	_, err := client.Complete(context.Background(), "s", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClient_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", "gpt-4")
	_, err := client.Complete(context.Background(), "s", "m")
	assert.Error(t, err)
}

func TestClient_Complete_ConnectionRefused(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "sk-test", "gpt-4")
	_, err := client.Complete(context.Background(), "s", "m")
	assert.Error(t, err)
}
