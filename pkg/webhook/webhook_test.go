package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giada-balinzo/chatmine/pkg/output"
	"github.com/giada-balinzo/chatmine/pkg/stats"
)

func testReport() *output.Report {
	r := &stats.Result{
		Label:         "TOTAL (ALL FILES)",
		TotalMessages: 3,
		Sent:          2,
		Received:      1,
	}
	return output.NewReport(
		[]*output.FileReport{{File: "chat.txt", Stats: r}},
		r,
		output.Metadata{Directory: "/chats", AnalyzedAt: time.Now()},
	)
}

func TestClient_Send_Success(t *testing.T) {
	var gotContentType, gotAuth, gotUserAgent string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotUserAgent = r.Header.Get("User-Agent")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	resp := client.Send(context.Background(), testReport(), SendOptions{
		URL:   server.URL,
		Token: "tok123",
	})

	if !resp.Success() {
		t.Fatalf("Send() failed: %v (status %d)", resp.Error, resp.StatusCode)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotUserAgent != "chatmine-webhook" {
		t.Errorf("User-Agent = %q", gotUserAgent)
	}
	if _, ok := gotBody["summary"]; !ok {
		t.Error("payload missing summary")
	}
	if gotBody["tool"] != "chatmine" {
		t.Errorf("payload tool = %v, want chatmine", gotBody["tool"])
	}
	if gotBody["directory"] != "/chats" {
		t.Errorf("payload directory = %v, want /chats", gotBody["directory"])
	}
	if _, ok := gotBody["total"]; !ok {
		t.Error("payload missing aggregate result")
	}
	if _, ok := gotBody["files"]; ok {
		t.Error("payload carries per-file sections, want aggregate only")
	}
}

func TestClient_Send_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header: %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{URL: server.URL})
	if !resp.Success() {
		t.Fatalf("Send() failed: %v", resp.Error)
	}
}

func TestClient_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{URL: server.URL})
	if resp.Success() {
		t.Error("Send() reported success on 500")
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", resp.StatusCode)
	}
	if resp.Error == nil {
		t.Error("expected error for 500 response")
	}
}

func TestClient_Send_ConnectionRefused(t *testing.T) {
	resp := NewClient().Send(context.Background(), testReport(), SendOptions{
		URL: "http://127.0.0.1:1/hook",
	})
	if resp.Success() {
		t.Error("Send() reported success on refused connection")
	}
	if resp.Error == nil {
		t.Error("expected connection error")
	}
}

func TestClient_Send_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{
		URL:     server.URL,
		Timeout: 10 * time.Millisecond,
	})
	if resp.Success() {
		t.Error("Send() reported success past timeout")
	}
}
