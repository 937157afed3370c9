package generation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelier-studio/atelier/internal/config"
	"github.com/atelier-studio/atelier/internal/generation"
)

func testConfig(url string) config.GenerationConfig {
	return config.GenerationConfig{
		BaseURL:     url,
		Token:       "test-token",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   2000,
		Language:    "en",
	}
}

func testMessages() []generation.Message {
	return []generation.Message{
		{Role: generation.RoleSystem, Content: "You are a content strategist."},
		{Role: generation.RoleUser, Content: "Create 3 posts."},
	}
}

func completionBody(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestGenerate(t *testing.T) {
	t.Run("returns first choice content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody(`{"posts":[]}`)))
		}))
		defer srv.Close()

		client := generation.New(testConfig(srv.URL))
		got, err := client.Generate(context.Background(), testMessages())
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if got != `{"posts":[]}` {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("sends expected request shape", func(t *testing.T) {
		var captured map[string]any
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&captured)
			w.Write([]byte(completionBody("ok")))
		}))
		defer srv.Close()

		client := generation.New(testConfig(srv.URL))
		if _, err := client.Generate(context.Background(), testMessages()); err != nil {
			t.Fatalf("Generate error: %v", err)
		}

		if auth != "Bearer test-token" {
			t.Errorf("authorization = %q, want Bearer test-token", auth)
		}
		if captured["model"] != "gpt-4o-mini" {
			t.Errorf("model = %v", captured["model"])
		}
		if captured["temperature"] != 0.7 {
			t.Errorf("temperature = %v", captured["temperature"])
		}
		if captured["max_tokens"] != float64(2000) {
			t.Errorf("max_tokens = %v", captured["max_tokens"])
		}

		rf, ok := captured["response_format"].(map[string]any)
		if !ok || rf["type"] != "json_object" {
			t.Errorf("response_format = %v, want json_object", captured["response_format"])
		}

		messages, ok := captured["messages"].([]any)
		if !ok || len(messages) != 2 {
			t.Fatalf("messages = %v, want 2 entries", captured["messages"])
		}
		first, _ := messages[0].(map[string]any)
		if first["role"] != "system" {
			t.Errorf("messages[0].role = %v, want system", first["role"])
		}
	})

	t.Run("missing token returns ErrMissingCredential", func(t *testing.T) {
		cfg := testConfig("http://unused")
		cfg.Token = ""

		client := generation.New(cfg)
		_, err := client.Generate(context.Background(), testMessages())
		if !errors.Is(err, generation.ErrMissingCredential) {
			t.Errorf("error = %v, want ErrMissingCredential", err)
		}
	})

	t.Run("non-success response returns UpstreamError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer srv.Close()

		client := generation.New(testConfig(srv.URL))
		_, err := client.Generate(context.Background(), testMessages())

		var upstream *generation.UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("error = %v, want UpstreamError", err)
		}
		if upstream.Status != http.StatusTooManyRequests {
			t.Errorf("status = %d, want 429", upstream.Status)
		}
		if upstream.Body != `{"error":"rate limited"}` {
			t.Errorf("body = %q", upstream.Body)
		}
	})

	t.Run("empty choices yields empty string", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		client := generation.New(testConfig(srv.URL))
		got, err := client.Generate(context.Background(), testMessages())
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if got != "" {
			t.Errorf("content = %q, want empty", got)
		}
	})

	t.Run("cancelled context aborts request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody("ok")))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := generation.New(testConfig(srv.URL))
		if _, err := client.Generate(ctx, testMessages()); err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}
