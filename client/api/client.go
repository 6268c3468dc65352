// client.go - Typed HTTP adapter for the catalog API
//
// The adapter attaches the stored bearer token to every request and clears
// the stored credentials when the server answers 401. It carries no business
// logic beyond shaping request bodies and unwrapping the response envelope.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"product-catalog/client/session"
)

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

func New(baseURL string, store *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		session: store,
	}
}

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	SKU         string    `json:"sku"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Pagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type ProductInput struct {
	Name        string
	Price       float64
	Category    string
	Stock       int
	SKU         string
	Description string
}

// APIError is the unwrapped error envelope. Errors holds field-keyed
// validation messages when the failure was a 422; Detail carries the raw
// server-side error text of a 500.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string][]string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// envelope mirrors the server's uniform response shape. Errors is raw because
// it is a field map on validation failures but a bare string on 500s.
type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     json.RawMessage `json:"errors"`
	Pagination *Pagination     `json:"pagination"`
}

// IsAuthenticated reports whether a token is stored locally. The server keeps
// authority: a revoked token still fails with 401 on the next call.
func (c *Client) IsAuthenticated() bool {
	return c.session.Get(session.KeyAuthToken) != ""
}

// StoredUser returns the cached user snapshot, or nil when logged out.
func (c *Client) StoredUser() *User {
	raw := c.session.Get(session.KeyUser)
	if raw == "" {
		return nil
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}

func (c *Client) Register(ctx context.Context, name, email, password, confirmation string) (*AuthData, error) {
	body := map[string]string{
		"name":                  name,
		"email":                 email,
		"password":              password,
		"password_confirmation": confirmation,
	}
	env, err := c.doJSON(ctx, http.MethodPost, "/api/register", body)
	if err != nil {
		return nil, err
	}
	return c.storeAuth(env)
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthData, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/api/login", body)
	if err != nil {
		return nil, err
	}
	return c.storeAuth(env)
}

// Logout revokes the current token server-side and clears the local session
// even when the call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/api/logout", nil)
	if clearErr := c.session.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/api/user", nil)
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal(env.Data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListProducts(ctx context.Context, page int) ([]Product, *Pagination, error) {
	env, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/products?page=%d", page), nil)
	if err != nil {
		return nil, nil, err
	}
	var products []Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		return nil, nil, err
	}
	return products, env.Pagination, nil
}

// CreateProduct submits the multipart create form. imagePath may be empty;
// when set, the file is attached under the "image" field.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput, imagePath string) (*Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        input.Name,
		"price":       strconv.FormatFloat(input.Price, 'f', -1, 64),
		"category":    input.Category,
		"stock":       strconv.Itoa(input.Stock),
		"sku":         input.SKU,
		"description": input.Description,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		part, err := w.CreateFormFile("image", filepath.Base(imagePath))
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodPost, "/api/products", &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var p Product
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) storeAuth(env *envelope) (*AuthData, error) {
	var auth AuthData
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		return nil, err
	}
	if auth.Token != "" {
		if err := c.session.Set(session.KeyAuthToken, auth.Token); err != nil {
			return nil, err
		}
		userJSON, err := json.Marshal(auth.User)
		if err != nil {
			return nil, err
		}
		if err := c.session.Set(session.KeyUser, string(userJSON)); err != nil {
			return nil, err
		}
	}
	return &auth, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, reader, "application/json")
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Get(session.KeyAuthToken); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// An unauthenticated answer invalidates the stored credentials. No
	// navigation happens here; the caller decides how to react.
	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.session.Delete(session.KeyAuthToken)
		_ = c.session.Delete(session.KeyUser)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		if len(env.Errors) > 0 {
			if err := json.Unmarshal(env.Errors, &apiErr.Errors); err != nil {
				_ = json.Unmarshal(env.Errors, &apiErr.Detail)
			}
		}
		return nil, apiErr
	}
	return &env, nil
}
