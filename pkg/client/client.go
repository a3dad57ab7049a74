// Package client is a Go client for the catalog service API. It holds the
// caller's authentication state the way the original single-page client did:
// the identity token is persisted through a TokenStore, attached to every
// request once obtained, and cleared when the server rejects it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shoplane/catalog-service/internal/core/domain"
)

// APIError is a non-2xx response from the service, carrying the server's
// error envelope message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client talks to the catalog service and tracks auth state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore

	mu    sync.Mutex
	state State
	subs  []func(State)
}

// New creates a Client for the service at baseURL. store may be nil, in which
// case the token only lives for the lifetime of the Client. httpClient may be
// nil to use a default with a 10s timeout.
func New(baseURL string, store TokenStore, httpClient *http.Client) *Client {
	if store == nil {
		store = &memoryTokenStore{}
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		store:      store,
		state:      State{Loading: true},
	}
}

// Load restores a persisted token and resolves the current user behind it.
// When the token no longer resolves, the persisted identity is cleared and
// the auth error surfaced in the state. Call once after New.
func (c *Client) Load(ctx context.Context) error {
	token, err := c.store.Load()
	if err != nil || token == "" {
		c.setState(func(s *State) { s.Loading = false })
		return err
	}

	c.setState(func(s *State) { s.Token = token })

	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		_ = c.store.Clear()
		c.setState(func(s *State) {
			*s = State{Err: "authentication error"}
		})
		return err
	}

	c.setState(func(s *State) {
		s.User = &user
		s.Authenticated = true
		s.Loading = false
		s.Err = ""
	})
	return nil
}

type credentialsRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates an account and signs the client in.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.authenticate(ctx, "/api/auth/register", credentialsRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Login signs the client in with existing credentials.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, "/api/auth/login", credentialsRequest{
		Email:    email,
		Password: password,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, req credentialsRequest) error {
	c.setState(func(s *State) {
		s.Loading = true
		s.Err = ""
	})

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		c.setState(func(s *State) {
			s.Loading = false
			s.Err = errMessage(err)
		})
		return err
	}

	if err := c.store.Save(resp.Token); err != nil {
		c.setState(func(s *State) { s.Loading = false })
		return fmt.Errorf("persist token: %w", err)
	}

	c.setState(func(s *State) {
		s.Token = resp.Token
		s.User = resp.User
		s.Authenticated = true
		s.Loading = false
	})
	return nil
}

// Logout clears the persisted identity and the in-memory auth state.
func (c *Client) Logout() error {
	err := c.store.Clear()
	c.setState(func(s *State) {
		*s = State{}
	})
	return err
}

// CurrentUser fetches the profile behind the current token.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ProductInput carries the fields for creating a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductUpdate is a presence-tagged partial update: nil fields are omitted
// from the request entirely, so the server leaves them unchanged.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

// Products returns the full catalog, newest first.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+id, update, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

// do performs one API call, attaching the bearer token when present and
// decoding either the success payload into out or the error envelope into
// an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.State().Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errMessage surfaces the server's message text when available, matching the
// original client's banner behavior.
func errMessage(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Message
	}
	return err.Error()
}
