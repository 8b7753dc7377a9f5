package langfuse

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// ingestionRecorder is a fake Langfuse ingestion endpoint.
type ingestionRecorder struct {
	mu     sync.Mutex
	bodies []map[string]any
	auth   string
	status int
}

func (rec *ingestionRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if user, pass, ok := r.BasicAuth(); ok {
		rec.auth = user + ":" + pass
	}
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	rec.bodies = append(rec.bodies, body)

	if rec.status != 0 {
		w.WriteHeader(rec.status)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"successes":[],"errors":[]}`))
}

func (rec *ingestionRecorder) event(t *testing.T) map[string]any {
	t.Helper()
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if len(rec.bodies) != 1 {
		t.Fatalf("expected 1 ingestion request, got %d", len(rec.bodies))
	}
	batch, ok := rec.bodies[0]["batch"].([]any)
	if !ok || len(batch) != 1 {
		t.Fatal("expected batch with 1 event")
	}
	return batch[0].(map[string]any)
}

func TestNewClient_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{name: "empty base URL", config: Config{BaseURL: "", PublicKey: "pk", SecretKey: "sk"}},
		{name: "empty public key", config: Config{BaseURL: "http://localhost", PublicKey: "", SecretKey: "sk"}},
		{name: "empty secret key", config: Config{BaseURL: "http://localhost", PublicKey: "pk", SecretKey: ""}},
		{name: "all empty", config: Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.config)
			if c.IsEnabled() {
				t.Error("expected client to be disabled")
			}

			traceID, err := c.CreateTrace(context.Background(), TraceInput{Name: "bedtime-estimate"})
			if err != nil || traceID != "" {
				t.Errorf("disabled CreateTrace = (%q, %v), want empty and nil", traceID, err)
			}
			if err := c.CreateScore(context.Background(), ScoreInput{TraceID: "t", Name: "user_rating", Value: 4}); err != nil {
				t.Errorf("disabled CreateScore error = %v", err)
			}
			c.Close()
		})
	}
}

func TestCreateTrace_EnabledClient(t *testing.T) {
	rec := &ingestionRecorder{}
	server := httptest.NewServer(rec)
	defer server.Close()

	c := NewClient(Config{
		BaseURL:     server.URL,
		PublicKey:   "pk-test",
		SecretKey:   "sk-test",
		Environment: "testing",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		Name:   "bedtime-estimate",
		Input:  map[string]any{"wake_time": "07:00", "sleep_hours": 8, "coffee_cups": 1},
		Output: map[string]any{"bedtime": "10:53 PM"},
		Tags:   []string{"better-rest"},
	})
	c.Close()

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if traceID == "" {
		t.Error("expected non-empty trace ID")
	}
	if rec.auth != "pk-test:sk-test" {
		t.Errorf("expected auth pk-test:sk-test, got %s", rec.auth)
	}

	event := rec.event(t)
	if event["type"] != "trace-create" {
		t.Errorf("expected type trace-create, got %v", event["type"])
	}

	body := event["body"].(map[string]any)
	if body["id"] != traceID {
		t.Errorf("expected body id %s, got %v", traceID, body["id"])
	}
	if body["name"] != "bedtime-estimate" {
		t.Errorf("expected name bedtime-estimate, got %v", body["name"])
	}
	metadata := body["metadata"].(map[string]any)
	if metadata["environment"] != "testing" {
		t.Errorf("expected environment testing, got %v", metadata["environment"])
	}
}

func TestCreateScore_EnabledClient(t *testing.T) {
	rec := &ingestionRecorder{}
	server := httptest.NewServer(rec)
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, PublicKey: "pk-test", SecretKey: "sk-test"})

	err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "trace-abc123",
		Name:    "user_rating",
		Value:   4.5,
		Comment: "Spot on",
	})
	c.Close()

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	event := rec.event(t)
	if event["type"] != "score-create" {
		t.Errorf("expected type score-create, got %v", event["type"])
	}
	body := event["body"].(map[string]any)
	if body["traceId"] != "trace-abc123" || body["name"] != "user_rating" || body["value"] != 4.5 || body["comment"] != "Spot on" {
		t.Errorf("unexpected score body: %+v", body)
	}
}

func TestCreateScore_RequiresTraceID(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://localhost", PublicKey: "pk", SecretKey: "sk"})

	if err := c.CreateScore(context.Background(), ScoreInput{Name: "user_rating", Value: 3}); err == nil {
		t.Error("expected error without trace id")
	}
	c.Close()
}

func TestCreateTrace_ServerErrorIsReportedAsync(t *testing.T) {
	rec := &ingestionRecorder{status: http.StatusInternalServerError}
	server := httptest.NewServer(rec)
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, PublicKey: "pk-test", SecretKey: "sk-test"})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{Name: "test"})
	c.Close()

	// Trace ID is generated locally and the request path never sees the failure.
	if traceID == "" {
		t.Error("expected trace ID even on delivery failure")
	}
	if err != nil {
		t.Errorf("expected no synchronous error, got %v", err)
	}

	select {
	case deliveryErr := <-c.(*client).errs:
		if deliveryErr == nil {
			t.Error("expected a delivery error")
		}
	default:
		t.Error("expected the delivery failure to be reported")
	}
}
