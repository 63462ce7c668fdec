// Package langfuse talks to the Langfuse public API: it batches trace and
// score events onto the ingestion endpoint and loads managed prompts. Without
// credentials every call is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const (
	sendTimeout   = 5 * time.Second
	flushInterval = time.Second
	maxBatchSize  = 50
	queueSize     = 1024
)

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace creates a new trace and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore attaches a score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Flush blocks until in-flight events are sent or ctx is done.
	Flush(ctx context.Context) error
	// Close sends what is queued, stops the worker and drops later events.
	Close(ctx context.Context) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID       string         // Optional: override trace ID (generates UUID if empty)
	UserID   string         // User identifier
	Name     string         // Trace name (e.g., "wellness-insights")
	Input    any            // Serializable input context
	Output   any            // Serializable output result
	Tags     []string       // Optional tags
	Metadata map[string]any // Optional metadata
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID string  // ID of the trace to score
	Name    string  // Score name (e.g., "user_rating")
	Value   float64 // Numeric score value
	Comment string  // Optional comment
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

func logger() *slog.Logger {
	return slog.Default().With("component", "langfuse")
}

// client queues events and ships them in batches from one worker goroutine.
// The worker starts with the first event and exits on Close.
type client struct {
	cfg        Config
	httpClient *http.Client

	queue    chan ingestionEvent
	flushReq chan chan struct{}
	start    sync.Once
	running  atomic.Bool

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool
}

// NewClient creates a Langfuse client. Missing credentials yield a disabled
// client whose calls do nothing.
func NewClient(cfg Config) Client {
	log := logger()
	switch {
	case cfg.BaseURL == "":
		log.Info("disabled", "reason", "LANGFUSE_BASE_URL is empty")
	case cfg.PublicKey == "":
		log.Info("disabled", "reason", "LANGFUSE_PUBLIC_KEY is empty")
	case cfg.SecretKey == "":
		log.Info("disabled", "reason", "LANGFUSE_SECRET_KEY is empty")
	default:
		log.Info("enabled", "base_url", cfg.BaseURL, "env", cfg.Environment)
	}

	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		queue:      make(chan ingestionEvent, queueSize),
		flushReq:   make(chan chan struct{}),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
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

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.cfg.Environment != "" {
		metadata["environment"] = c.cfg.Environment
	}

	c.enqueue(newEvent("trace-create", traceBody{
		ID:       traceID,
		Name:     in.Name,
		UserID:   in.UserID,
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

	c.enqueue(newEvent("score-create", scoreBody{
		ID:      uuid.New().String(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}))
	return nil
}

// Flush sends every queued event and waits for the send to finish.
func (c *client) Flush(ctx context.Context) error {
	if !c.running.Load() {
		return nil
	}
	done := make(chan struct{})
	select {
	case c.flushReq <- done:
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains the queue, waits for the final send and stops the worker.
// Safe to call more than once.
func (c *client) Close(ctx context.Context) error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		// Consume the start so a late event cannot spawn a worker.
		c.start.Do(func() {})
		close(c.stop)
	})
	if !c.running.Load() {
		return nil
	}
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newEvent(eventType string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

// enqueue never blocks the request path; a full queue drops the event.
func (c *client) enqueue(event ingestionEvent) {
	if c.closed.Load() {
		logger().Debug("client closed, dropping event", "type", event.Type)
		return
	}
	c.start.Do(func() {
		c.running.Store(true)
		go c.run()
	})
	select {
	case c.queue <- event:
	default:
		logger().Warn("ingestion queue full, dropping event", "type", event.Type)
	}
}

func (c *client) run() {
	defer close(c.done)
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	var pending []ingestionEvent
	send := func() {
		if len(pending) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := c.sendBatch(ctx, pending); err != nil {
			logger().Warn("ingestion batch failed", "events", len(pending), "error", err)
		}
		pending = nil
	}

	drain := func() {
		for {
			select {
			case event := <-c.queue:
				pending = append(pending, event)
			default:
				return
			}
		}
	}

	for {
		select {
		case event := <-c.queue:
			pending = append(pending, event)
			if len(pending) >= maxBatchSize {
				send()
			}
		case <-ticker.C:
			send()
		case done := <-c.flushReq:
			drain()
			send()
			close(done)
		case <-c.stop:
			drain()
			send()
			return
		}
	}
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := sonic.Marshal(batchPayload{Batch: events})
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
	UserID   string         `json:"userId,omitempty"`
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
