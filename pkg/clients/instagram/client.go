package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"socialscope/pkg/clients"
	"socialscope/pkg/models"

	"github.com/failsafe-go/failsafe-go"
)

var (
	ErrUnauthorized = errors.New("instagram: unauthorized")
	ErrRateLimited  = errors.New("instagram: rate limited")
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("instagram returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("instagram returned status: %d", e.StatusCode)
}

const (
	defaultBaseURL = "https://graph.instagram.com"
	maxMediaLimit  = 25
)

type Client struct {
	baseURL      string
	accessToken  string
	client       *http.Client
	httpExecutor failsafe.Executor[*http.Response]
	shouldRetry  func(resp *http.Response, err error) bool
}

type Option func(*Client)

func NewClient(accessToken string, opts ...Option) *Client {
	defaultConfig := clients.DefaultHTTPExecutorConfig()
	c := &Client{
		baseURL:      defaultBaseURL,
		accessToken:  accessToken,
		client:       &http.Client{Timeout: 10 * time.Second},
		httpExecutor: clients.NewHTTPExecutor(defaultConfig),
		shouldRetry:  defaultConfig.ShouldRetry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.client = httpClient
		}
	}
}

func WithHTTPExecutorConfig(cfg clients.HTTPExecutorConfig) Option {
	return func(c *Client) {
		c.httpExecutor = clients.NewHTTPExecutor(cfg)
		c.shouldRetry = cfg.ShouldRetry
	}
}

// Configured reports whether an access token is present. Without one the
// service falls back to demo data.
func (c *Client) Configured() bool {
	return c.accessToken != ""
}

func (c *Client) doRequest(ctx context.Context, build func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	if c.httpExecutor == nil {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		return c.client.Do(req)
	}

	return clients.ExecuteHTTP(ctx, c.httpExecutor, func() (*http.Response, error) {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		resp, err := c.client.Do(req)
		if c.shouldRetry != nil && c.shouldRetry(resp, err) {
			if resp != nil && resp.Body != nil {
				_ = resp.Body.Close()
			}
		}
		return resp, err
	})
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	params.Set("access_token", c.accessToken)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	resp, err := c.doRequest(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_ = resp.Body.Close()
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		_ = resp.Body.Close()
		return nil, ErrRateLimited
	case resp.StatusCode >= 400:
		defer func() { _ = resp.Body.Close() }()
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
	}

	return resp, nil
}

// GetProfile fetches the token owner's profile via GET /me.
func (c *Client) GetProfile(ctx context.Context) (*models.InstagramUser, error) {
	params := url.Values{}
	params.Set("fields", "id,username,account_type,media_count")

	resp, err := c.get(ctx, "/me", params)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var user models.InstagramUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &user, nil
}

// GetMedia fetches the token owner's recent media via GET /me/media. The
// Graph API caps a page at 25 items.
func (c *Client) GetMedia(ctx context.Context, limit int) ([]models.InstagramMedia, error) {
	if limit <= 0 || limit > maxMediaLimit {
		limit = maxMediaLimit
	}

	params := url.Values{}
	params.Set("fields", "id,media_type,media_url,thumbnail_url,permalink,caption,timestamp,like_count,comments_count")
	params.Set("limit", fmt.Sprintf("%d", limit))

	resp, err := c.get(ctx, "/me/media", params)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var result struct {
		Data []models.InstagramMedia `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Data, nil
}

// RefreshAccessToken exchanges the long-lived token for a fresh one and
// returns the new token with its lifetime.
func (c *Client) RefreshAccessToken(ctx context.Context) (string, time.Duration, error) {
	params := url.Values{}
	params.Set("grant_type", "ig_refresh_token")

	resp, err := c.get(ctx, "/refresh_access_token", params)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", 0, fmt.Errorf("failed to decode response: %w", err)
	}

	c.accessToken = result.AccessToken
	return result.AccessToken, time.Duration(result.ExpiresIn) * time.Second, nil
}

// FetchAccountData pulls the profile and recent media in one call. When no
// token is configured it returns demo data instead of failing, so the rest
// of the pipeline stays exercisable without Graph API access.
func (c *Client) FetchAccountData(ctx context.Context, limit int) (*models.InstagramUser, []models.InstagramMedia, error) {
	if !c.Configured() {
		user, media := DemoData()
		return user, media, nil
	}

	user, err := c.GetProfile(ctx)
	if err != nil {
		return nil, nil, err
	}

	media, err := c.GetMedia(ctx, limit)
	if err != nil {
		return nil, nil, err
	}

	return user, media, nil
}
