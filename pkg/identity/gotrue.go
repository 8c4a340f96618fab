package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Config describes the identity provider connection. APIKey is the public
// (anon) key used for end-user operations; ServiceKey is the elevated
// service-role key required only by the admin client.
type Config struct {
	BaseURL        string        `env:"IDENTITY_BASE_URL,required"`
	APIKey         string        `env:"IDENTITY_API_KEY,required"`
	ServiceKey     string        `env:"IDENTITY_SERVICE_KEY"`
	RequestTimeout time.Duration `env:"IDENTITY_REQUEST_TIMEOUT" envDefault:"10s"`
	CookieName     string        `env:"IDENTITY_COOKIE_NAME" envDefault:"gk_session"`
	SecureCookies  bool          `env:"IDENTITY_SECURE_COOKIES" envDefault:"true"`
}

// Client talks to a GoTrue-compatible auth API. It implements Provider.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a provider client for end-user operations.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpc:   &http.Client{Timeout: cfg.RequestTimeout},
	}, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authPayload covers both response shapes the provider uses: a full session
// (token grant, auto-confirmed sign-up) and a bare user object.
type authPayload struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`

	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (p *authPayload) session() *Session {
	s := &Session{
		AccessToken:  p.AccessToken,
		TokenType:    p.TokenType,
		RefreshToken: p.RefreshToken,
		User:         p.User,
	}
	if p.ExpiresIn > 0 {
		s.ExpiresAt = time.Now().Add(time.Duration(p.ExpiresIn) * time.Second)
	}
	if s.User == nil && p.ID != uuid.Nil {
		s.User = &User{ID: p.ID, Email: p.Email}
	}
	return s
}

// SignUp registers a new identity with the provider.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/signup", "", credentials{email, password}, &payload); err != nil {
		return nil, err
	}
	return payload.session(), nil
}

// SignIn exchanges email/password credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/token?grant_type=password", "", credentials{email, password}, &payload); err != nil {
		return nil, err
	}
	return payload.session(), nil
}

// SignOut revokes the session behind the access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
}

// User resolves the identity behind the access token.
func (c *Client) User(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	return doRequest(ctx, c.httpc, method, c.baseURL+path, c.apiKey, token, in, out)
}

// AdminClient performs administrative operations with the service-role key.
// It implements Admin and holds exactly one capability: user deletion.
type AdminClient struct {
	baseURL    string
	serviceKey string
	httpc      *http.Client
}

// NewAdminClient creates the elevated client. It fails when the service-role
// key is absent so a misconfigured deployment cannot silently degrade.
func NewAdminClient(cfg Config) (*AdminClient, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.ServiceKey == "" {
		return nil, ErrMissingServiceKey
	}
	return &AdminClient{
		baseURL:    cfg.BaseURL,
		serviceKey: cfg.ServiceKey,
		httpc:      &http.Client{Timeout: cfg.RequestTimeout},
	}, nil
}

// DeleteUser permanently deletes the identity record.
func (c *AdminClient) DeleteUser(ctx context.Context, id uuid.UUID) error {
	path := "/admin/users/" + url.PathEscape(id.String())
	return doRequest(ctx, c.httpc, http.MethodDelete, c.baseURL+path, c.serviceKey, c.serviceKey, nil, nil)
}

func doRequest(ctx context.Context, httpc *http.Client, method, rawURL, apiKey, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("identity: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("identity: build request: %w", err)
	}
	req.Header.Set("apikey", apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return fmt.Errorf("identity: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return parseProviderError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("identity: decode response: %w", err)
		}
	}
	return nil
}

// parseProviderError extracts the provider's own error description so it can
// be surfaced verbatim. The API uses several envelope shapes across versions.
func parseProviderError(resp *http.Response) error {
	var envelope struct {
		Msg         string `json:"msg"`
		Message     string `json:"message"`
		Description string `json:"error_description"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &envelope)

	msg := envelope.Msg
	if msg == "" {
		msg = envelope.Message
	}
	if msg == "" {
		msg = envelope.Description
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &ProviderError{Status: resp.StatusCode, Message: msg}
}
