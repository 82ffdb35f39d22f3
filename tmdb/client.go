package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tmdb-cli/tmdb/constant"
	"github.com/tmdb-cli/tmdb/log"
	"github.com/tmdb-cli/tmdb/network"
	"github.com/tmdb-cli/tmdb/util"
)

// Client fetches movie lists from the provider.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the movie collection root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLanguage overrides the locale tag.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// WithHTTPClient replaces the shared HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the public TMDB API.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    constant.ProviderBaseURL,
		language:   constant.ProviderLanguage,
		httpClient: network.Client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Movies issues one GET for the category and returns the results in provider order.
func (c *Client) Movies(ctx context.Context, category Category, credential string) ([]*Movie, error) {
	if credential == "" {
		return nil, ErrNoCredential
	}

	params := url.Values{}
	params.Set("api_key", credential)
	params.Set("language", c.language)
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(string(category)), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	log.Infof("fetching %s movies", category)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: unwrapURLError(err)}
	}
	defer util.Ignore(resp.Body.Close)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response body: %w", err)}
	}

	log.Debugf("provider answered %d for %s (%d bytes)", resp.StatusCode, category, len(body))

	var list listResponse
	decodeErr := json.Unmarshal(body, &list)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e := &UnavailableError{StatusCode: resp.StatusCode, StatusMessage: list.StatusMessage}
		if e.StatusMessage == "" {
			e.Err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		}
		return nil, e
	}

	if decodeErr != nil {
		return nil, &UnavailableError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}

	if list.Results == nil {
		return nil, &UnavailableError{StatusCode: resp.StatusCode, Err: errors.New("response has no results")}
	}

	return *list.Results, nil
}

// unwrapURLError strips the *url.Error wrapper, whose message repeats the request URL and with it the API key.
func unwrapURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return fmt.Errorf("%s: %w", strings.ToLower(urlErr.Op), urlErr.Err)
	}
	return err
}
