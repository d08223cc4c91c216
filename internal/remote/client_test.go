package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAskSendsPromptAndContext(t *testing.T) {
	var got askRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(askResponse{Response: "Try our Vitamin C range."})
	}))
	defer server.Close()

	client := New(Config{URL: server.URL})
	answer, err := client.Ask(context.Background(), "what helps with scurvy?", "Vitamin C 1000mg | Vitamins | Ascorbic Acid | 9.99 | 60")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "Try our Vitamin C range." {
		t.Fatalf("unexpected answer %q", answer)
	}
	if got.Prompt != "what helps with scurvy?" {
		t.Fatalf("unexpected prompt %q", got.Prompt)
	}
	if !strings.Contains(got.Context, "Vitamin C 1000mg") {
		t.Fatalf("unexpected context %q", got.Context)
	}
}

func TestAskRejectsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(Config{URL: server.URL})
	_, err := client.Ask(context.Background(), "anything", "")
	if err == nil {
		t.Fatalf("expected error for status 502")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestAskRejectsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := New(Config{URL: server.URL})
	if _, err := client.Ask(context.Background(), "anything", ""); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestAskRejectsEmptyAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(askResponse{Response: "   "})
	}))
	defer server.Close()

	client := New(Config{URL: server.URL})
	if _, err := client.Ask(context.Background(), "anything", ""); err == nil {
		t.Fatalf("expected empty-answer error")
	}
}

func TestAskRejectsEmptyPrompt(t *testing.T) {
	client := New(Config{URL: "http://localhost:0"})
	if _, err := client.Ask(context.Background(), "  ", ""); err == nil {
		t.Fatalf("expected error for blank prompt")
	}
}

func TestAskRequiresURL(t *testing.T) {
	client := New(Config{})
	if _, err := client.Ask(context.Background(), "anything", ""); err == nil {
		t.Fatalf("expected error for missing URL")
	}
}

func TestAskHonorsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(Config{URL: server.URL, Timeout: 5 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.Ask(ctx, "anything", ""); err == nil {
		t.Fatalf("expected context deadline error")
	}
}
