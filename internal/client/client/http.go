package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/logging"
)

const (
	RequestIDHeaderName = "X-Request-ID"
	maxBodySize         = 1 << 20
	maxErrorBodySize    = 512
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	timeout time.Duration
	logger  logging.Logger
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// WithTimeout bounds every call; zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		tokens:  TokenFunc(func() string { return "" }),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) endpoint(path string, params url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = ""
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

// Request performs one API call. body, when non-nil, is sent as JSON; out,
// when non-nil, receives the decoded JSON response.
func (c *HTTPClient) Request(ctx context.Context, method, path string, body any, params url.Values, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, params), reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.logger.With("method", method, "path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "api request failed", "error", err, "duration", time.Since(started))
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w: %w", method, path, ErrUnavailable, err)
	}

	log.Debug(ctx, "api request", "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(data)), maxErrorBodySize),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (c *HTTPClient) Login(ctx context.Context, login, password string) (models.Session, error) {
	var resp models.SessionResponse
	err := c.Request(ctx, http.MethodPost, "/sessions", models.Credentials{Login: login, Password: password}, nil, &resp)
	if err != nil {
		return models.Session{}, err
	}
	if resp.Token == "" {
		return models.Session{}, fmt.Errorf("POST /sessions: %w: response carries no token", ErrServer)
	}
	return resp.Session(), nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error {
	return c.Request(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), req, nil, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

func (c *HTTPClient) SearchPosts(ctx context.Context, search string, page int) ([]models.Post, error) {
	params := url.Values{}
	params.Set("search", search)
	params.Set("page", strconv.Itoa(page))

	posts := []models.Post{}
	if err := c.Request(ctx, http.MethodGet, "/posts", nil, params, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) ListReplies(ctx context.Context, postID int64) ([]models.Reply, error) {
	replies := []models.Reply{}
	if err := c.Request(ctx, http.MethodGet, fmt.Sprintf("/posts/%d/replies", postID), nil, nil, &replies); err != nil {
		return nil, err
	}
	return replies, nil
}

func (c *HTTPClient) CreateReply(ctx context.Context, postID int64, message string) (models.Reply, error) {
	var reply models.Reply
	body := models.CreateReplyRequest{Reply: models.ReplyBody{Message: message}}
	if err := c.Request(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/replies", postID), body, nil, &reply); err != nil {
		return models.Reply{}, err
	}
	return reply, nil
}
