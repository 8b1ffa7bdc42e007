package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned for 404 responses and for filtered lookups that
// come back with an empty result set.
var ErrNotFound = errors.New("directory: record not found")

// Client talks to the Directory Service, the REST store holding doctors,
// users, admins and booked appointments.
//
// Single-record doctor and user reads go through a short-lived cache;
// appointment reads never do, because the booking pre-check depends on a
// fresh read every time.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *logrus.Logger

	profiles *cache.Cache
}

// NewClient builds a client for the directory at baseURL.
func NewClient(baseURL string, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		// No timeout and no retries: a hung request blocks that flow
		// until the directory answers, matching the backend contract.
		HTTP:     &http.Client{},
		Log:      logger,
		profiles: cache.New(30*time.Second, time.Minute),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("directory: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("directory: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.WithFields(logrus.Fields{
			"method": method,
			"url":    u,
			"error":  err,
		}).Error("directory request failed")
		return fmt.Errorf("directory: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("directory: %s %s returned %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("directory: decode response: %w", err)
	}
	return nil
}
