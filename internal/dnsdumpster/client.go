// Package dnsdumpster implements a client for the DNSDumpster domain API.
// See https://dnsdumpster.com/developer/
package dnsdumpster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/qdm12/dnsdumpster/internal/models"
	"github.com/qdm12/dnsdumpster/internal/sleep"
)

const DefaultBaseURL = "https://api.dnsdumpster.com"

// RateLimitDelay is the time waited before retrying a request
// rejected with HTTP status 429.
const RateLimitDelay = 2 * time.Second

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	apiKey     string
	logger     Logger
	sleeper    Sleeper
	retryDelay time.Duration
}

// New creates a DNSDumpster client. Requests and responses are logged
// at the debug level, with the API key redacted.
func New(httpClient *http.Client, baseURL, apiKey string,
	logger Logger) (client *Client, err error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w", ErrAPIKeyNotSet)
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseURLNotValid, err)
	} else if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: %q must have a scheme and a host",
			ErrBaseURLNotValid, baseURL)
	}

	return &Client{
		httpClient: makeLogClient(httpClient, logger),
		baseURL:    parsedURL,
		apiKey:     apiKey,
		logger:     logger,
		sleeper:    sleep.New(),
		retryDelay: RateLimitDelay,
	}, nil
}

// GetDomain fetches the records of the domain given.
// If the API rate limits the request, the same request is sent again
// after a fixed delay, for as long as the API keeps rate limiting it
// and the context is not canceled.
func (c *Client) GetDomain(ctx context.Context, domain string,
	options Options) (record models.Record, err error) {
	u := c.baseURL.JoinPath("domain", domain)
	u.RawQuery = options.values().Encode()

	for {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return models.Record{}, fmt.Errorf("creating http request: %w", err)
		}
		setUserAgent(request)
		setAccept(request, "application/json")
		setAPIKey(request, c.apiKey)

		response, err := c.httpClient.Do(request)
		if err != nil {
			return models.Record{}, err
		}

		if response.StatusCode != http.StatusTooManyRequests {
			return decodeResponse(response)
		}

		_ = response.Body.Close()
		c.logger.Warn("Request limit exceeded. Waiting " + c.retryDelay.String() +
			" and trying again...")
		err = c.sleeper.Sleep(ctx, c.retryDelay)
		if err != nil {
			return models.Record{}, fmt.Errorf("waiting for rate limit: %w", err)
		}
	}
}

func decodeResponse(response *http.Response) (record models.Record, err error) {
	b, err := io.ReadAll(response.Body)
	if err != nil {
		_ = response.Body.Close()
		return models.Record{}, fmt.Errorf("reading response body: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return models.Record{}, fmt.Errorf("closing response body: %w", err)
	}

	if response.StatusCode < http.StatusOK ||
		response.StatusCode >= http.StatusMultipleChoices {
		return models.Record{}, fmt.Errorf("%w: %d: %s",
			ErrHTTPStatusNotValid, response.StatusCode, toSingleLine(string(b)))
	}

	record, err = models.ParseRecord(b)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrUnmarshalResponse, err)
	}

	return record, nil
}
