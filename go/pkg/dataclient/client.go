// Package dataclient fetches the mini server's payload and keeps the latest copy.
package dataclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/example/snippet-lab/go/pkg/logging"
	"github.com/example/snippet-lab/go/pkg/models"
)

// ErrUnexpectedStatus is matched by every *StatusError.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

// Client issues single GET requests. There is no retry.
type Client struct {
	HTTP   *http.Client
	Logger *zap.Logger
}

// New returns a client using http.DefaultClient.
func New(logger *zap.Logger) *Client {
	return &Client{HTTP: http.DefaultClient, Logger: logger}
}

// Fetch GETs url and decodes the body as DataJSON.
// Failures are logged and then returned to the caller.
func (c *Client) Fetch(ctx context.Context, url string) (models.DataJSON, error) {
	data, err := c.fetch(ctx, url)
	if err != nil {
		logging.OrNop(c.Logger).Error("Error fetching data", zap.String("url", url), zap.Error(err))
		return models.DataJSON{}, err
	}
	return data, nil
}

func (c *Client) fetch(ctx context.Context, url string) (models.DataJSON, error) {
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.DataJSON{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := hc.Do(req)
	if err != nil {
		return models.DataJSON{}, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.DataJSON{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var data models.DataJSON
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.DataJSON{}, fmt.Errorf("decode response: %w", err)
	}
	return data, nil
}

// LoadInto fetches url and passes the result to write.
// write is not called when the fetch fails.
func LoadInto(ctx context.Context, c *Client, url string, write func(models.DataJSON)) error {
	data, err := c.Fetch(ctx, url)
	if err != nil {
		return err
	}
	write(data)
	return nil
}
