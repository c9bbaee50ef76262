package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/api/dto"
	"github.com/gymkit/dashboard/internal/config"
	"github.com/gymkit/dashboard/internal/domain"
	"github.com/gymkit/dashboard/internal/events"
	"github.com/gymkit/dashboard/internal/observability"
	"github.com/gymkit/dashboard/pkg/util"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource func() string

// GymClient calls the remote gym-management API. Failures never escape as
// panics into UI code; every call returns a util.ClientError that callers
// treat as "operation did not happen".
type GymClient struct {
	baseURL    string
	http       *http.Client
	logger     *zap.Logger
	metrics    *observability.Metrics
	dispatcher events.Dispatcher
	tokens     TokenSource
}

// NewGymClient builds the client. The token source is attached later because
// the session store that owns the token needs the client for login.
func NewGymClient(cfg config.APIConfig, logger *zap.Logger, metrics *observability.Metrics, dispatcher events.Dispatcher) *GymClient {
	return &GymClient{
		baseURL:    cfg.BaseURL,
		http:       &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
		metrics:    metrics,
		dispatcher: dispatcher,
	}
}

// SetTokenSource attaches the bearer token supplier.
func (c *GymClient) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Login authenticates against POST /auth/login. A rejection surfaces the
// backend-provided message verbatim and never revokes the local session.
func (c *GymClient) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	req := dto.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp, false); err != nil {
		ce := util.ToClientError(err)
		if ce.Kind == util.KindHTTP {
			return nil, util.NewAuthError(ce.Message, ce.HTTPStatus)
		}
		return nil, err
	}
	return &resp, nil
}

// ListMembers fetches the full member collection.
func (c *GymClient) ListMembers(ctx context.Context) ([]domain.Member, error) {
	var payloads []dto.MemberPayload
	if err := c.do(ctx, http.MethodGet, "/members", nil, &payloads, true); err != nil {
		return nil, err
	}
	return dto.MembersToDomain(payloads), nil
}

// CreateMember creates a member record.
func (c *GymClient) CreateMember(ctx context.Context, req dto.MemberRequest) error {
	return c.do(ctx, http.MethodPost, "/members", req, nil, true)
}

// UpdateMember updates an existing member record.
func (c *GymClient) UpdateMember(ctx context.Context, id string, req dto.MemberRequest) error {
	return c.do(ctx, http.MethodPut, "/members/"+id, req, nil, true)
}

// DeleteMember removes a member. Success is signaled by the HTTP exchange
// alone; no body is parsed.
func (c *GymClient) DeleteMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/members/"+id, nil, nil, true)
}

// ListTrainers fetches the full trainer collection.
func (c *GymClient) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	var payloads []dto.TrainerPayload
	if err := c.do(ctx, http.MethodGet, "/trainers", nil, &payloads, true); err != nil {
		return nil, err
	}
	return dto.TrainersToDomain(payloads), nil
}

// CreateTrainer creates a trainer record.
func (c *GymClient) CreateTrainer(ctx context.Context, req dto.TrainerRequest) error {
	return c.do(ctx, http.MethodPost, "/trainers", req, nil, true)
}

// UpdateTrainer updates an existing trainer record.
func (c *GymClient) UpdateTrainer(ctx context.Context, id string, req dto.TrainerRequest) error {
	return c.do(ctx, http.MethodPut, "/trainers/"+id, req, nil, true)
}

// DeleteTrainer removes a trainer.
func (c *GymClient) DeleteTrainer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/trainers/"+id, nil, nil, true)
}

func (c *GymClient) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return util.NewNetworkFailure(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return util.NewNetworkFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed && c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordFailure(path, method, string(util.KindNetwork))
		c.logger.Error("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return util.NewNetworkFailure(err)
	}
	defer resp.Body.Close()

	c.metrics.RecordCall(path, method, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := c.errorMessage(resp)
		c.metrics.RecordFailure(path, method, string(util.KindHTTP))
		c.logger.Warn("api call rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("backend_message", message),
		)
		if authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			_ = c.dispatcher.Publish(ctx, events.Event{
				Type:      events.EventSessionRevoked,
				Timestamp: time.Now(),
				Payload:   events.SessionRevokedPayload{Status: resp.StatusCode, Path: path},
			})
			return util.NewAuthError(message, resp.StatusCode)
		}
		return util.NewHTTPError(resp.StatusCode, message)
	}

	// DELETE success is status-only; nothing to decode.
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.RecordFailure(path, method, string(util.KindNetwork))
		c.logger.Error("api response decode failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return util.NewNetworkFailure(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// errorMessage extracts the backend's human-readable message, falling back to
// a generic one when the body is not the expected shape.
func (c *GymClient) errorMessage(resp *http.Response) string {
	var body dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(resp.StatusCode)
}
