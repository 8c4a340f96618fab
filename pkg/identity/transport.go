package identity

import (
	"net/http"
	"strings"
	"time"
)

// Transport defines how the session credential travels between the client
// and the server. Only the credential moves through a transport; the session
// itself always lives at the provider.
type Transport interface {
	// Token extracts the access token from the request.
	Token(r *http.Request) (string, error)

	// SetToken attaches the access token to the response.
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken removes the access token from the response.
	ClearToken(w http.ResponseWriter) error
}

// CookieTransport carries the token in an HTTP cookie.
type CookieTransport struct {
	name   string
	secure bool
}

// NewCookieTransport creates a cookie-based transport. The cookie is always
// HttpOnly; secure controls the Secure flag and should only be disabled for
// local development.
func NewCookieTransport(name string, secure bool) *CookieTransport {
	return &CookieTransport{name: name, secure: secure}
}

func (t *CookieTransport) Token(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", ErrNoSession
	}
	return c.Value, nil
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	cookie := &http.Cookie{
		Name:     t.name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(w, cookie)
	return nil
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// HeaderTransport carries the token in a request header, typically
// "Authorization: Bearer <token>" for API clients.
type HeaderTransport struct {
	header string
	prefix string
}

// NewHeaderTransport creates a header-based transport.
func NewHeaderTransport(header, prefix string) *HeaderTransport {
	return &HeaderTransport{header: header, prefix: prefix}
}

func (t *HeaderTransport) Token(r *http.Request) (string, error) {
	value := r.Header.Get(t.header)
	if value == "" {
		return "", ErrNoSession
	}
	if t.prefix != "" {
		if !strings.HasPrefix(value, t.prefix) {
			return "", ErrNoSession
		}
		value = strings.TrimPrefix(value, t.prefix)
	}
	return value, nil
}

func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, _ time.Duration) error {
	w.Header().Set(t.header, t.prefix+token)
	return nil
}

func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.header)
	return nil
}

// CompositeTransport reads the token from the first transport that has one
// and writes through all of them. Typical setup: cookie for browsers plus
// bearer header for API clients.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport combines multiple transports.
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

func (t *CompositeTransport) Token(r *http.Request) (string, error) {
	for _, tr := range t.transports {
		if token, err := tr.Token(r); err == nil {
			return token, nil
		}
	}
	return "", ErrNoSession
}

func (t *CompositeTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	for _, tr := range t.transports {
		if err := tr.SetToken(w, token, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (t *CompositeTransport) ClearToken(w http.ResponseWriter) error {
	for _, tr := range t.transports {
		if err := tr.ClearToken(w); err != nil {
			return err
		}
	}
	return nil
}
