// cmd/veracity/server_test.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "veracity-test")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	if err := InitLogger(dir+"/test.log", LogError); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	InitErrorBuffer(50)

	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	config := defaultConfig()
	resolver, err := NewSourceResolver("")
	if err != nil {
		t.Fatalf("NewSourceResolver: %v", err)
	}
	analyzer := NewAnalyzer(resolver, DefaultLexicons(), NewSocialSynthesizer(rand.New(rand.NewSource(7))))

	return NewServer(config, analyzer, NewExtractor(config), NewHistoryStore(maxAnalysisHistory), nil, nil)
}

func doRequest(s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)

	payload, _ := json.Marshal(AnalysisInput{
		Title:   "Council approves budget after public hearing",
		Content: "The city council approved the annual budget on Tuesday. Officials said the vote followed weeks of public comment sessions across the district.",
	})

	rr := doRequest(s, "POST", "/api/analyze", payload)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var result AnalysisResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if result.ID == "" {
		t.Error("missing id in response")
	}
	if result.CredibilityScore < 0 || result.CredibilityScore > 100 {
		t.Errorf("credibility %d out of range", result.CredibilityScore)
	}

	// The result must be retrievable afterwards.
	rr = doRequest(s, "GET", "/api/analyses/"+result.ID, nil)
	if rr.Code != http.StatusOK {
		t.Errorf("lookup status = %d", rr.Code)
	}
}

func TestHandleAnalyzeRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body []byte
	}{
		{"invalid json", []byte("{not json")},
		{"empty input", []byte("{}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(s, "POST", "/api/analyze", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestHandleListAnalyses(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 3; i++ {
		payload, _ := json.Marshal(AnalysisInput{Title: fmt.Sprintf("Headline number %d for the list", i)})
		if rr := doRequest(s, "POST", "/api/analyze", payload); rr.Code != http.StatusOK {
			t.Fatalf("seed analyze failed: %d", rr.Code)
		}
	}

	rr := doRequest(s, "GET", "/api/analyses?limit=2", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var results []AnalysisResult
	if err := json.Unmarshal(rr.Body.Bytes(), &results); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}

	rr = doRequest(s, "GET", "/api/analyses?limit=bogus", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", rr.Code)
	}
}

func TestHandleGetAnalysisNotFound(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, "GET", "/api/analyses/does-not-exist", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestHandleReputation(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, "GET", "/api/reputation/www.reuters.com", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var record CredibilityRecord
	if err := json.Unmarshal(rr.Body.Bytes(), &record); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if record.Domain != "reuters.com" {
		t.Errorf("domain = %q, want normalized reuters.com", record.Domain)
	}
	if record.Reliability != 95 {
		t.Errorf("reliability = %v, want 95", record.Reliability)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, "GET", "/api/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var health map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &health); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("status field = %v", health["status"])
	}
	if health["version"] != VERSION {
		t.Errorf("version field = %v", health["version"])
	}
}

func TestHandleErrors(t *testing.T) {
	s := newTestServer(t)

	RecordError("test-component", SeverityWarning, fmt.Errorf("synthetic failure"))

	rr := doRequest(s, "GET", "/api/errors", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var events []ErrorEvent
	if err := json.Unmarshal(rr.Body.Bytes(), &events); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected at least one recorded error")
	}
	if events[0].Component != "test-component" {
		t.Errorf("component = %q", events[0].Component)
	}
}
