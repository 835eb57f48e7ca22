package data

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cinetalk/internal/biz"
	"cinetalk/internal/conf"
	"cinetalk/internal/pkg/metrics"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	defaultCompletionModel     = "gpt-3.5-turbo-instruct"
	defaultCompletionMaxTokens = 100
	completionBreakerName      = "completion-api"
)

// permanentError marks provider responses that will not improve on retry.
type permanentError struct {
	msg string
}

func (e *permanentError) Error() string { return e.msg }

func isPermanent(err error) bool {
	var pe *permanentError
	return stderrors.As(err, &pe)
}

type completionClient struct {
	client     *http.Client
	cb         *gobreaker.CircuitBreaker[string]
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int32
	maxRetries int
	log        *log.Helper
}

type completionRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int32  `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewCompletionClient creates a client for an OpenAI-compatible completions API
func NewCompletionClient(c *conf.Completion, logger log.Logger) biz.CompletionClient {
	l := log.NewHelper(logger)

	model := c.Model
	if model == "" {
		model = defaultCompletionModel
	}
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultCompletionMaxTokens
	}

	metrics.CircuitBreakerState.WithLabelValues(completionBreakerName).Set(0)
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        completionBreakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Client mistakes say nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || isPermanent(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Infof("circuit breaker %s: %s -> %s", name, from, to)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &completionClient{
		client: &http.Client{
			Timeout: c.Timeout.AsDuration(),
		},
		cb:         cb,
		baseURL:    strings.TrimRight(c.Url, "/"),
		apiKey:     c.ApiKey,
		model:      model,
		maxTokens:  maxTokens,
		maxRetries: int(c.MaxRetries),
		log:        l,
	}
}

func (c *completionClient) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := c.cb.Execute(func() (string, error) {
		return c.completeWithRetry(ctx, prompt)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CompletionRequests.WithLabelValues("rejected").Inc()
			return "", errors.ServiceUnavailable(biz.ReasonUpstreamUnavailable, "completion provider is temporarily unavailable")
		}
		metrics.CompletionRequests.WithLabelValues("failure").Inc()
		return "", errors.New(http.StatusBadGateway, biz.ReasonUpstreamFailure, err.Error()).WithCause(err)
	}
	metrics.CompletionRequests.WithLabelValues("success").Inc()
	return text, nil
}

func (c *completionClient) completeWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	// Retry logic with linear backoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 200 * time.Millisecond
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			c.log.WithContext(ctx).Infof("retrying completion request, attempt %d/%d", attempt, c.maxRetries)
		}

		text, err := c.doRequest(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if isPermanent(err) || ctx.Err() != nil {
			break
		}
	}

	c.log.WithContext(ctx).Warnf("completion request failed: %v", lastErr)
	return "", lastErr
}

func (c *completionClient) doRequest(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:     c.model,
		Prompt:    prompt,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed completionResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		if decodeErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		// 4xx other than rate limiting are request problems.
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", &permanentError{msg: msg}
		}
		return "", stderrors.New(msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if len(parsed.Choices) == 0 {
		return "", &permanentError{msg: "provider returned no completion"}
	}
	return parsed.Choices[0].Text, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
