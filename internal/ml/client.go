// Package ml talks to the external model-scoring service. The classifier
// itself (training, serialization) lives outside this repository; from here
// it is an opaque predict endpoint.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client errors
var (
	ErrScorerUnavailable = errors.New("ml: scorer unavailable")
	ErrScorerRejected    = errors.New("ml: scorer rejected request")
)

// Classifier produces a dropout prediction for a feature record
type Classifier interface {
	Predict(ctx context.Context, features Features) (Prediction, error)
}

// ModelInfo describes the loaded model, for diagnostics
type ModelInfo struct {
	ModelName string `json:"model_name"`
	Loaded    bool   `json:"loaded"`
}

// ClientConfig contains configuration for the scorer client
type ClientConfig struct {
	// BaseURL is the scoring service base URL
	BaseURL string

	// Timeout is the HTTP request timeout
	Timeout time.Duration

	// Logger for structured logging
	Logger zerolog.Logger
}

// Client is an HTTP client for the model-scoring service
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new scorer client
func NewClient(config ClientConfig) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: config.Logger,
	}
}

// predictResponse is the scorer's wire format. Probabilities are optional;
// not every estimator exposes predict_proba.
type predictResponse struct {
	Prediction    int       `json:"prediction"`
	Probabilities []float64 `json:"probabilities,omitempty"`
}

// Predict sends a feature record to the scorer and returns its verdict
func (c *Client) Predict(ctx context.Context, features Features) (Prediction, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return Prediction{}, fmt.Errorf("ml: failed to encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("ml: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrScorerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("body", string(payload)).
			Msg("Scorer returned non-OK status")
		return Prediction{}, fmt.Errorf("%w: status %d", ErrScorerRejected, resp.StatusCode)
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Prediction{}, fmt.Errorf("ml: failed to decode prediction: %w", err)
	}

	return Prediction{
		Label:         decoded.Prediction,
		Probabilities: decoded.Probabilities,
	}, nil
}

// Info probes the scorer for model metadata. Used at startup to decide
// whether prediction endpoints can be served, and by the model-info
// diagnostic endpoint.
func (c *Client) Info(ctx context.Context) (ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/model-info", nil)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("ml: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("%w: %v", ErrScorerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ModelInfo{}, fmt.Errorf("%w: status %d", ErrScorerRejected, resp.StatusCode)
	}

	var info ModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return ModelInfo{}, fmt.Errorf("ml: failed to decode model info: %w", err)
	}
	info.Loaded = true

	return info, nil
}

// BaseURL returns the configured scorer address
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}
