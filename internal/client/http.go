package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"trychooser/internal/domain"
)

type HTTP struct {
	Base string
	HTTP *http.Client
}

func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// StatusError is a non-2xx response from chooserd.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("chooserd %s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("chooserd %s %s: %d %s", e.Method, e.Path, e.Code, e.Message)
}

// Unwrap maps 404 to domain.ErrSessionNotFound so callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return domain.ErrSessionNotFound
	}
	return nil
}

type definitionResponse struct {
	Fingerprint domain.Fingerprint `json:"fingerprint"`
	Definition  domain.Definition  `json:"definition"`
}

type eventsRequest struct {
	Events []domain.Event `json:"events"`
}

func (c *HTTP) Definition(ctx context.Context) (domain.Definition, domain.Fingerprint, error) {
	var out definitionResponse
	if err := c.getJSON(ctx, "/definition", &out); err != nil {
		return domain.Definition{}, "", err
	}
	return out.Definition, out.Fingerprint, nil
}

func (c *HTTP) CreateSession(ctx context.Context) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.post(ctx, "/sessions", nil, &out)
}

func (c *HTTP) Session(ctx context.Context, id domain.SessionID) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.getJSON(ctx, sessionPath(id), &out)
}

func (c *HTTP) ApplyEvents(ctx context.Context, id domain.SessionID, events []domain.Event) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.post(ctx, sessionPath(id)+"/events", eventsRequest{Events: events}, &out)
}

func (c *HTTP) ResetSession(ctx context.Context, id domain.SessionID) (domain.Snapshot, error) {
	var out domain.Snapshot
	return out, c.post(ctx, sessionPath(id)+"/reset", nil, &out)
}

func (c *HTTP) DeleteSession(ctx context.Context, id domain.SessionID) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id), nil, nil)
}

func sessionPath(id domain.SessionID) string {
	return "/sessions/" + url.PathEscape(id.String())
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTP) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("chooserd %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return statusError(method, path, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("chooserd %s %s: decode: %w", method, path, err)
		}
	}
	return nil
}

func statusError(method, path string, resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	// best effort; the status alone is enough to report
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
	return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Message: body.Message}
}

var _ domain.ChooserClient = (*HTTP)(nil)
