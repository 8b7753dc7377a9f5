// Package langfuse records bedtime estimates and user ratings in Langfuse
// through its HTTP ingestion API. Without credentials the client is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// asyncTimeout is the maximum time to wait for async Langfuse API calls.
const asyncTimeout = 5 * time.Second

// Client is the interface for Langfuse operations.
type Client interface {
	IsEnabled() bool
	// CreateTrace records a trace and returns its ID. Delivery happens in the background.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore attaches a score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Close waits for in-flight deliveries.
	Close()
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID       string // generated when empty
	Name     string // e.g. "bedtime-estimate"
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID string
	Name    string // e.g. "user_rating"
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

func (c Config) enabled() bool {
	return c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

type client struct {
	cfg        Config
	httpClient *http.Client
	inflight   sync.WaitGroup

	// errs receives delivery failures; tests read it, production only logs.
	errs chan error
}

// NewClient creates a new Langfuse client.
// If baseURL or keys are empty, returns a disabled no-op client.
func NewClient(cfg Config) Client {
	switch {
	case cfg.BaseURL == "":
		log.Println("[langfuse] disabled: LANGFUSE_BASE_URL is empty")
	case cfg.PublicKey == "":
		log.Println("[langfuse] disabled: LANGFUSE_PUBLIC_KEY is empty")
	case cfg.SecretKey == "":
		log.Println("[langfuse] disabled: LANGFUSE_SECRET_KEY is empty")
	default:
		log.Printf("[langfuse] enabled: base_url=%s env=%s", cfg.BaseURL, cfg.Environment)
	}

	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		errs:       make(chan error, 16),
	}
}

func (c *client) IsEnabled() bool {
	return c.cfg.enabled()
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.IsEnabled() {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	metadata := in.Metadata
	if c.cfg.Environment != "" {
		if metadata == nil {
			metadata = make(map[string]any)
		}
		metadata["environment"] = c.cfg.Environment
	}

	c.sendAsync(newEvent("trace-create", traceBody{
		ID:       traceID,
		Name:     in.Name,
		Input:    in.Input,
		Output:   in.Output,
		Tags:     in.Tags,
		Metadata: metadata,
	}))

	return traceID, nil
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.IsEnabled() {
		return nil
	}
	if in.TraceID == "" {
		return fmt.Errorf("score %q: trace id is required", in.Name)
	}

	c.sendAsync(newEvent("score-create", scoreBody{
		ID:      uuid.New().String(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}))

	return nil
}

func (c *client) Close() {
	c.inflight.Wait()
}

// sendAsync delivers an event off the request path. Errors are logged, not returned.
func (c *client) sendAsync(event ingestionEvent) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := c.sendBatch(ctx, []ingestionEvent{event}); err != nil {
			log.Printf("[langfuse] async %s send failed: %v", event.Type, err)
			select {
			case c.errs <- err:
			default:
			}
		}
	}()
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}

	return nil
}

func newEvent(eventType string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

// Wire types of the ingestion API

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
