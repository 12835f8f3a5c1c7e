package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPClientGenerate(t *testing.T) {
	var got GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]string{"response": "generated text"})
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, time.Second)
	out, err := client.Generate(context.Background(), GenerateRequest{
		Prompt: "hola",
		Model:  "codellama",
		System: "instruction",
	})
	require.NoError(t, err)
	require.Equal(t, "generated text", out)
	require.Equal(t, "hola", got.Prompt)
	require.Equal(t, "codellama", got.Model)
	require.Equal(t, "instruction", got.System)
}

func TestHTTPClientGenerateNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hola"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClientGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hola"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClientGenerateMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hola"})
	require.ErrorIs(t, err, ErrUnavailable)
}
