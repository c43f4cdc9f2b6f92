package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientDefaults(t *testing.T) {
	if _, err := NewClient("", "", Options{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
	c, err := NewClient("sk", "", Options{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.model != DefaultModel {
		t.Fatalf("expected default model %s, got %s", DefaultModel, c.model)
	}
	if c.url != apiURL {
		t.Fatalf("expected default url, got %s", c.url)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr string
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `{"id":"1","model":"gpt-4o-mini","choices":[{"message":{"role":"assistant","content":"You have strong SQL."}}]}`,
			want:   "You have strong SQL.",
		},
		{
			name:    "api error",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"bad key","type":"invalid_request_error"}}`,
			wantErr: "openai http status 401: bad key (invalid_request_error)",
		},
		{
			name:    "non json failure",
			status:  http.StatusBadGateway,
			body:    `upstream exploded`,
			wantErr: "openai http status 502: upstream exploded",
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: "openai response missing choices",
		},
		{
			name:   "blank content passes through",
			status: http.StatusOK,
			body:   `{"choices":[{"message":{"role":"assistant","content":"  "}}]}`,
			want:   "  ",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got chatRequest
			var auth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				auth = r.Header.Get("Authorization")
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewClient("sk-test", "gpt-test", Options{URL: srv.URL})
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			out, err := c.Generate(context.Background(), "question")
			if auth != "Bearer sk-test" {
				t.Fatalf("unexpected auth header %q", auth)
			}
			if got.Model != "gpt-test" || len(got.Messages) != 1 || got.Messages[0].Content != "question" {
				t.Fatalf("unexpected request body: %+v", got)
			}
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("expected error %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if out != tt.want {
				t.Fatalf("Generate() = %q, want %q", out, tt.want)
			}
		})
	}
}
