package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// AuthHeader is the custom header carrying the auth token.
const AuthHeader = "x-auth-token"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client speaks the backend's REST contract. It is a thin bridge: all
// resume state lives in the store, all persistence lives behind the API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// NewClient creates a backend client. A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, tokens TokenStore) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid registration: %w", err)
	}
	var resp types.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "register", false, req, &resp); err != nil {
		return err
	}
	return c.tokens.Store(resp.Token)
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, req types.LoginRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid login: %w", err)
	}
	var resp types.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "login", false, req, &resp); err != nil {
		return err
	}
	return c.tokens.Store(resp.Token)
}

// Logout clears the stored token. Purely local; the token is stateless on
// the backend side.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// Me fetches the current authenticated user.
func (c *Client) Me(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", "fetch current user", true, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveResume persists the payload to the backend and returns the saved
// copy. The payload is a value captured by the caller at call time, so a
// save in flight serializes the record as it was when the save started,
// regardless of edits made while waiting for the response.
func (c *Client) SaveResume(ctx context.Context, payload WirePayload) (*SavedResume, error) {
	var saved SavedResume
	if err := c.do(ctx, http.MethodPost, "/api/resume", "save resume", true, payload, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListResumes fetches the caller's saved resumes.
func (c *Client) ListResumes(ctx context.Context) ([]SavedResume, error) {
	var resumes []SavedResume
	if err := c.do(ctx, http.MethodGet, "/api/resume", "list resumes", true, nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// RenameResume changes the display title of a saved resume.
func (c *Client) RenameResume(ctx context.Context, id, newName string) (*SavedResume, error) {
	body := map[string]string{"newName": newName}
	var updated SavedResume
	path := fmt.Sprintf("/api/resume/%s/rename", id)
	if err := c.do(ctx, http.MethodPut, path, "rename resume", true, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// FetchShared retrieves a publicly shared resume and normalizes it into
// the in-memory shape. No auth is required. The payload is checked
// against the wire schema first; missing fields are fine (the defaulting
// rules absorb them), structurally impossible ones are not.
func (c *Client) FetchShared(ctx context.Context, id string) (types.ResumeRecord, types.TemplateID, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/share/%s", id)
	if err := c.do(ctx, http.MethodGet, path, "fetch shared resume", false, nil, &raw); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return types.ResumeRecord{}, "", &NotFoundError{Resource: "shared resume", ID: id}
		}
		return types.ResumeRecord{}, "", err
	}

	if err := schemas.ValidateResumePayload(raw); err != nil {
		return types.ResumeRecord{}, "", &Error{Operation: "fetch shared resume", Message: "malformed payload", Cause: err}
	}

	var shared SavedResume
	if err := json.Unmarshal(raw, &shared); err != nil {
		return types.ResumeRecord{}, "", &Error{Operation: "fetch shared resume", Message: "malformed payload", Cause: err}
	}
	return FromWire(shared.Payload()), shared.Template(), nil
}

// do performs one backend call: marshal the body up front, attach the
// token when the endpoint needs it, and decode either the result or the
// server's error message. A 401 clears the stored token so the caller is
// forced back through login instead of silently failing the action.
func (c *Client) do(ctx context.Context, method, path, operation string, authed bool, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Operation: operation, Message: "failed to encode request", Cause: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{Operation: operation, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, err := c.tokens.Token()
		if err != nil {
			return err
		}
		req.Header.Set(AuthHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Operation: operation, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Operation: operation, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.tokens.Clear()
		return &AuthError{Reason: serverMessage(respBody, "token rejected")}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Operation: operation, Status: resp.StatusCode, Message: serverMessage(respBody, http.StatusText(resp.StatusCode))}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{Operation: operation, Message: "failed to decode response", Cause: err}
		}
	}
	return nil
}

// serverMessage extracts a human-readable message from an error response
// body, falling back when the body is not the expected JSON shape.
func serverMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		ErrMsg  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.ErrMsg != "" {
			return payload.ErrMsg
		}
	}
	return fallback
}
