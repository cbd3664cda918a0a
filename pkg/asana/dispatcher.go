package asana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Dispatcher executes HTTP requests against the Asana API. It owns transport,
// authentication, serialization, retries, and pagination; resource services
// hold a shared reference to it and translate operations into verb/path pairs.
//
// A Dispatcher is safe for concurrent use. Multiple requests may be in flight
// at once; no ordering is imposed between them.
type Dispatcher struct {
	cfg    *Config
	client *http.Client
	logger hclog.Logger
}

// dataEnvelope is the request/response wrapper the API uses: bodies go out as
// {"data": ...} and single records come back the same way.
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

// collectionPage is one page of a collection response.
type collectionPage struct {
	Data     []json.RawMessage `json:"data"`
	NextPage *nextPage         `json:"next_page"`
}

type nextPage struct {
	Offset string `json:"offset"`
	Path   string `json:"path"`
	URI    string `json:"uri"`
}

// NewDispatcher creates a dispatcher from cfg, applying defaults for unset
// fields and validating the result.
func NewDispatcher(cfg *Config) (*Dispatcher, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	defaults := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaults.MaxRetries
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaults.RetryDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dispatcher config: %w", err)
	}

	return &Dispatcher{
		cfg:    cfg,
		client: cfg.NewHTTPClient(),
		logger: cfg.Logger.Named("dispatcher"),
	}, nil
}

// Get retrieves a single record and decodes it into result.
func (d *Dispatcher) Get(ctx context.Context, path string, params map[string]string, result interface{}) error {
	return d.do(ctx, http.MethodGet, path, params, nil, &dataEnvelope{Data: result})
}

// GetCollection retrieves a collection, following next_page offsets until the
// collection is exhausted, and decodes the aggregated items into result
// (a pointer to a slice). Callers see a single flat collection regardless of
// how many pages the server returned.
func (d *Dispatcher) GetCollection(ctx context.Context, path string, params map[string]string, result interface{}) error {
	merged := make(map[string]string, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}

	var items []json.RawMessage
	for {
		var page collectionPage
		if err := d.do(ctx, http.MethodGet, path, merged, nil, &page); err != nil {
			return err
		}
		items = append(items, page.Data...)

		if page.NextPage == nil || page.NextPage.Offset == "" {
			break
		}
		merged["offset"] = page.NextPage.Offset
	}

	if result == nil {
		return nil
	}

	buf, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("asana: failed to assemble collection: %w", err)
	}
	return json.Unmarshal(buf, result)
}

// Post creates or mutates a record. data is wrapped in the API's data
// envelope and passed through otherwise unmodified.
func (d *Dispatcher) Post(ctx context.Context, path string, data, result interface{}) error {
	var body interface{}
	if data != nil {
		body = dataEnvelope{Data: data}
	}
	return d.do(ctx, http.MethodPost, path, nil, body, &dataEnvelope{Data: result})
}

// Put applies a partial update to a record. Fields absent from data are left
// unchanged server-side.
func (d *Dispatcher) Put(ctx context.Context, path string, data, result interface{}) error {
	var body interface{}
	if data != nil {
		body = dataEnvelope{Data: data}
	}
	return d.do(ctx, http.MethodPut, path, nil, body, &dataEnvelope{Data: result})
}

// Delete removes a record. The API responds with an empty record, which is
// discarded.
func (d *Dispatcher) Delete(ctx context.Context, path string) error {
	return d.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do executes one logical request with retry. Recoverable failures (429, 5xx,
// transport errors) are retried with exponential backoff up to MaxRetries;
// everything else fails immediately and is surfaced unchanged.
func (d *Dispatcher) do(ctx context.Context, method, path string, params map[string]string, body, result interface{}) error {
	endpoint, err := d.url(path, params)
	if err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("asana: failed to marshal request body: %w", err)
		}
	}

	requestID := uuid.New().String()
	log := d.logger.With("request_id", requestID, "method", method, "path", path)

	var respBody []byte
	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("asana: failed to create request: %w", err))
		}

		// OAuth clients inject their own Authorization header.
		if d.cfg.TokenSource == nil {
			req.Header.Set("Authorization", "Bearer "+d.cfg.AccessToken)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", requestID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := d.client.Do(req)
		if err != nil {
			log.Debug("request failed", "error", err)
			return fmt.Errorf("asana: request failed: %w", err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("asana: failed to read response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := newAPIError(resp.StatusCode, requestID, b)
			log.Debug("request rejected", "status", resp.StatusCode)
			if apiErr.Recoverable() {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}

		respBody = b
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.cfg.RetryDelay
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(d.cfg.MaxRetries)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return err
	}

	log.Debug("request complete", "bytes", len(respBody))

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("asana: failed to decode response: %w", err)
		}
	}

	return nil
}

// url constructs the request URL with query parameters.
func (d *Dispatcher) url(path string, params map[string]string) (string, error) {
	u, err := url.Parse(d.cfg.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("asana: invalid request path %q: %w", path, err)
	}

	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
