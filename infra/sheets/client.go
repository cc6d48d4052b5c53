// Package sheets reads the roster and availability responses from a Google
// spreadsheet and writes scheduling results back, using the values REST API
// over plain HTTP. Reads authenticate with an API key, writes with an OAuth2
// bearer token.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/auth"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/config"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/logger"
)

// Client talks to the spreadsheet backend for one configured document.
type Client struct {
	cfg  config.SheetsConfig
	http *http.Client
	base string
	cred *auth.ClientCred
	log  logger.Logger
	now  func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithBaseURL overrides the API endpoint, used by tests to point the client
// at a mock server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.base = u
		}
	}
}

// WithClock replaces the time source used for synthesized timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTokenSource sets the credential used to authorize writes.
func WithTokenSource(cred *auth.ClientCred) Option {
	return func(c *Client) { c.cred = cred }
}

// NewClient builds a client for the configured spreadsheet.
func NewClient(cfg config.SheetsConfig, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		base: cfg.BaseURL,
		log:  logger.New("sheets"),
		now:  time.Now,
	}
	if cfg.Auth.TokenURL != "" {
		c.cred = auth.NewClientCred(cfg.Auth)
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

func (c *Client) valuesURL(rangeA1 string, query url.Values) string {
	return fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?%s",
		c.base, url.PathEscape(c.cfg.SpreadsheetID), url.PathEscape(rangeA1), query.Encode())
}

// getValues fetches all rows of the given A1 range.
func (c *Client) getValues(ctx context.Context, rangeA1 string) ([][]string, error) {
	query := url.Values{}
	if c.cfg.APIKey != "" {
		query.Set("key", c.cfg.APIKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.valuesURL(rangeA1, query), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rangeA1, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rangeA1, err)
	}
	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode %s: %w", rangeA1, err)
	}
	return vr.Values, nil
}

// updateValues overwrites the given A1 range with values.
func (c *Client) updateValues(ctx context.Context, rangeA1 string, values [][]string) error {
	query := url.Values{"valueInputOption": {"RAW"}}
	body, err := json.Marshal(valueRange{Range: rangeA1, Values: values})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.valuesURL(rangeA1, query), bytes.NewReader(body))
	if err != nil {
		return err
	}
	return c.doWrite(req, rangeA1)
}

// appendValues appends rows after the last row of the given worksheet.
func (c *Client) appendValues(ctx context.Context, worksheet string, values [][]string) error {
	query := url.Values{"valueInputOption": {"RAW"}}
	body, err := json.Marshal(valueRange{Values: values})
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?%s",
		c.base, url.PathEscape(c.cfg.SpreadsheetID), url.PathEscape(worksheet), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	return c.doWrite(req, worksheet)
}

func (c *Client) doWrite(req *http.Request, what string) error {
	req.Header.Set("Content-Type", "application/json")
	if c.cred != nil {
		if err := c.cred.SetAuthHeader(req); err != nil {
			return fmt.Errorf("authorize write: %w", err)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("write %s: %w", what, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("write %s: %w", what, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
}
