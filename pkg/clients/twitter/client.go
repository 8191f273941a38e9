package twitter

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

// Sentinel errors for the failure modes callers branch on.
var (
	ErrNotFound     = errors.New("twitter: user not found")
	ErrUnauthorized = errors.New("twitter: unauthorized")
	ErrRateLimited  = errors.New("twitter: rate limited")
)

type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("twitter returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("twitter returned status: %d", e.StatusCode)
}

const (
	defaultBaseURL = "https://api.twitter.com"
	maxTweetPage   = 100
)

type Client struct {
	baseURL      string
	bearerToken  string
	client       *http.Client
	httpExecutor failsafe.Executor[*http.Response]
	shouldRetry  func(resp *http.Response, err error) bool
}

type Option func(*Client)

func NewClient(bearerToken string, opts ...Option) *Client {
	defaultConfig := clients.DefaultHTTPExecutorConfig()
	c := &Client{
		baseURL:      defaultBaseURL,
		bearerToken:  bearerToken,
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

func (c *Client) get(ctx context.Context, reqURL string) (*http.Response, error) {
	resp, err := c.doRequest(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
		return req, nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_ = resp.Body.Close()
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		_ = resp.Body.Close()
		return nil, ErrRateLimited
	case resp.StatusCode >= 400:
		defer func() { _ = resp.Body.Close() }()
		var apiErr struct {
			Detail string `json:"detail"`
			Title  string `json:"title"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		detail := apiErr.Detail
		if detail == "" {
			detail = apiErr.Title
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	return resp, nil
}

// GetUserByUsername fetches one user via GET /2/users/by/username/:username
// with the public metrics expansion.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*models.TwitterUser, error) {
	params := url.Values{}
	params.Set("user.fields", "public_metrics,created_at,description,verified")
	reqURL := fmt.Sprintf("%s/2/users/by/username/%s?%s", c.baseURL, url.PathEscape(username), params.Encode())

	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var result struct {
		Data   *models.TwitterUser `json:"data"`
		Errors []struct {
			Title string `json:"title"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	// The v2 API reports unknown usernames as a 200 with an errors array.
	if result.Data == nil {
		return nil, ErrNotFound
	}

	return result.Data, nil
}

// GetUserTweets fetches the user's recent original tweets via
// GET /2/users/:id/tweets, excluding retweets and replies, going back
// lookbackDays from now. Results are paged up to maxTweets.
func (c *Client) GetUserTweets(ctx context.Context, userID string, lookbackDays, maxTweets int) ([]models.Tweet, error) {
	startTime := time.Now().UTC().AddDate(0, 0, -lookbackDays).Format(time.RFC3339)

	var tweets []models.Tweet
	paginationToken := ""
	for {
		pageSize := maxTweetPage
		if remaining := maxTweets - len(tweets); remaining < pageSize {
			pageSize = remaining
		}
		if pageSize <= 0 {
			break
		}
		// The tweets endpoint rejects max_results below 5.
		if pageSize < 5 {
			pageSize = 5
		}

		params := url.Values{}
		params.Set("max_results", fmt.Sprintf("%d", pageSize))
		params.Set("tweet.fields", "created_at,public_metrics,entities")
		params.Set("exclude", "retweets,replies")
		params.Set("start_time", startTime)
		if paginationToken != "" {
			params.Set("pagination_token", paginationToken)
		}
		reqURL := fmt.Sprintf("%s/2/users/%s/tweets?%s", c.baseURL, url.PathEscape(userID), params.Encode())

		resp, err := c.get(ctx, reqURL)
		if err != nil {
			return nil, err
		}

		var result struct {
			Data []models.Tweet `json:"data"`
			Meta struct {
				NextToken string `json:"next_token"`
			} `json:"meta"`
		}
		err = json.NewDecoder(resp.Body).Decode(&result)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		tweets = append(tweets, result.Data...)
		if result.Meta.NextToken == "" || len(tweets) >= maxTweets {
			break
		}
		paginationToken = result.Meta.NextToken
	}

	if len(tweets) > maxTweets {
		tweets = tweets[:maxTweets]
	}
	return tweets, nil
}

// FetchAccountData resolves a username and pulls its recent tweets in one
// call, the shape the analyze handler consumes.
func (c *Client) FetchAccountData(ctx context.Context, username string, lookbackDays, maxTweets int) (*models.TwitterUser, []models.Tweet, error) {
	user, err := c.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	tweets, err := c.GetUserTweets(ctx, user.ID, lookbackDays, maxTweets)
	if err != nil {
		return nil, nil, err
	}

	return user, tweets, nil
}
