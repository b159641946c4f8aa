package remote

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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxErrorBody = 512

// ErrEmptyResponse is returned when a 2xx response that should carry a JSON
// document has no body.
var ErrEmptyResponse = errors.New("backend returned an empty body")

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: backend returned status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Client issues JSON requests against the catalog backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

// NewClient returns a client rooted at baseURL. A zero timeout means the
// client never gives up on its own; callers bound requests with ctx.
func NewClient(baseURL string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger.WithField("component", "remote"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.WithFields(logrus.Fields{"method": method, "path": path, "request_id": reqID})
	log.Debug("Sending request to catalog backend")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorf("Request failed: %v", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warnf("Backend returned status %d", resp.StatusCode)
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			log.Error("Backend answered with an empty body")
			return fmt.Errorf("decode %s %s response: %w", method, path, ErrEmptyResponse)
		}
		log.Errorf("Failed to decode response: %v", err)
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	log.Debugf("Backend answered %d", resp.StatusCode)
	return nil
}
