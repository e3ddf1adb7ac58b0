// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

// Package backend implements the client side of the fixed REST contract
// the challenge platform exposes. Payloads are normalized here, at the
// boundary, so the rest of the engine only ever sees domain snapshots.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zampapp/challenge-engine/pkg/challenge"
)

// Client talks to the challenge platform API.
type Client struct {
	http       *resty.Client
	maxRetries uint64
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token used on authenticated calls.
func WithToken(token string) Option {
	return func(c *Client) {
		c.http.SetAuthToken(token)
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithMaxRetries overrides how many times idempotent reads are retried.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// NewClient creates a client for the API served at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Accept", "application/json"),
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoginResponse is returned by Login.
type LoginResponse struct {
	Token string                 `json:"token"`
	User  *challenge.UserPayload `json:"user"`
}

// Login authenticates with email and password and stores the returned
// bearer token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var result LoginResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("logging in: unexpected status %s", resp.Status())
	}

	c.http.SetAuthToken(result.Token)
	return &result, nil
}

// GetProfile fetches the authenticated user's profile, normalized
// against now for package expiry.
func (c *Client) GetProfile(ctx context.Context, now time.Time) (*challenge.User, error) {
	var payload challenge.UserPayload
	if err := c.get(ctx, "/auth/profile", &payload); err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return payload.Normalize(now), nil
}

// ListChallenges fetches all challenges.
func (c *Client) ListChallenges(ctx context.Context) ([]*challenge.Challenge, error) {
	var payloads []challenge.ChallengePayload
	if err := c.get(ctx, "/challenges", &payloads); err != nil {
		return nil, fmt.Errorf("listing challenges: %w", err)
	}

	challenges := make([]*challenge.Challenge, 0, len(payloads))
	for i := range payloads {
		challenges = append(challenges, payloads[i].Normalize())
	}
	return challenges, nil
}

// GetChallenge fetches a single challenge by id.
func (c *Client) GetChallenge(ctx context.Context, id string) (*challenge.Challenge, error) {
	var payload challenge.ChallengePayload
	if err := c.get(ctx, fmt.Sprintf("/challenges/%s", id), &payload); err != nil {
		return nil, fmt.Errorf("getting challenge %s: %w", id, err)
	}
	return payload.Normalize(), nil
}

// GetAttemptStatus fetches the daily attempt status for a challenge.
func (c *Client) GetAttemptStatus(ctx context.Context, challengeID string) (*challenge.AttemptStatus, error) {
	var payload challenge.AttemptStatusPayload
	if err := c.get(ctx, fmt.Sprintf("/challenges/%s/timer/status", challengeID), &payload); err != nil {
		return nil, fmt.Errorf("getting attempt status for %s: %w", challengeID, err)
	}
	return payload.Normalize(), nil
}

// JoinChallenge joins a challenge. Not retried: the server call is not
// idempotent, retries are the caller's decision.
func (c *Client) JoinChallenge(ctx context.Context, challengeID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		Post(fmt.Sprintf("/challenges/%s/join", challengeID))
	if err != nil {
		return fmt.Errorf("joining challenge %s: %w", challengeID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("joining challenge %s: unexpected status %s", challengeID, resp.Status())
	}
	return nil
}

// ListShopChallenges fetches the purchasable challenges for a user.
func (c *Client) ListShopChallenges(ctx context.Context, userID string) ([]*challenge.Challenge, error) {
	var payloads []challenge.ChallengePayload
	if err := c.get(ctx, fmt.Sprintf("/shop/challenges/%s", userID), &payloads); err != nil {
		return nil, fmt.Errorf("listing shop challenges: %w", err)
	}

	challenges := make([]*challenge.Challenge, 0, len(payloads))
	for i := range payloads {
		challenges = append(challenges, payloads[i].Normalize())
	}
	return challenges, nil
}

// PurchaseRequest is the body of PurchaseChallenge.
type PurchaseRequest struct {
	UserID      string `json:"userId"`
	ChallengeID string `json:"challengeId"`
	Provider    string `json:"provider"`
	ReceiptID   string `json:"receiptId"`
}

// PurchaseChallenge records a completed in-app purchase on the backend.
func (c *Client) PurchaseChallenge(ctx context.Context, req PurchaseRequest) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		SetBody(req).
		Post("/shop/purchase")
	if err != nil {
		return fmt.Errorf("purchasing challenge %s: %w", req.ChallengeID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("purchasing challenge %s: unexpected status %s", req.ChallengeID, resp.Status())
	}
	return nil
}

// get performs an idempotent GET with exponential backoff on transport
// errors and 5xx responses.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	operation := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("X-Request-ID", uuid.NewString()).
			SetResult(result).
			Get(path)
		if err != nil {
			logrus.Warnf("GET %s failed: %v, retrying...", path, err)
			return err
		}
		if resp.StatusCode() >= 500 {
			logrus.Warnf("GET %s returned %s, retrying...", path, resp.Status())
			return fmt.Errorf("unexpected status %s", resp.Status())
		}
		if resp.IsError() {
			// Client errors are not retryable.
			return backoff.Permanent(fmt.Errorf("unexpected status %s", resp.Status()))
		}
		return nil
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)
	return backoff.Retry(operation, b)
}
