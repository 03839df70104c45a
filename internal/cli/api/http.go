package api

import (
	"JewelryStore/internal/cli/repo"
	fsrepo "JewelryStore/internal/cli/repo/fs"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Error — ошибка, которую вернул сервер в формате {"message", "fields"}.
type Error struct {
	Status  int               `json:"-"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s (HTTP %d): %s", msg, e.Status, strings.Join(parts, "; "))
}

// StatusOf возвращает HTTP-статус ошибки сервера или 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Client — тонкий JSON-клиент API магазина.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Store   repo.AuthStore
}

// NewClient создаёт клиента с файловым хранилищем токена.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Store:   fsrepo.AuthFSStore{},
	}
}

// DoJSON отправляет JSON-запрос. Пустой token означает анонимный запрос.
func DoJSON(ctx context.Context, hc *http.Client, method, endpoint string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, b, nil
}

// Call выполняет запрос к path с сохранённым токеном и декодирует ответ в out.
// Ответ со статусом >= 400 превращается в *Error.
func (c *Client) Call(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	token, err := c.Store.Load()
	if err != nil && !errors.Is(err, fsrepo.ErrNotLoggedIn) {
		return err
	}
	return c.call(ctx, method, path, query, payload, out, token)
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, payload, out any, token string) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	resp, body, err := DoJSON(ctx, c.HTTP, method, endpoint, payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Status: resp.StatusCode}
		// тело может быть не JSON (прокси, паника до middleware)
		if jerr := json.Unmarshal(body, apiErr); jerr != nil {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return apiErr
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// LoginResult — ответ POST /api/auth/login.
type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		ID       string  `json:"id"`
		Username string  `json:"username"`
		Name     string  `json:"name"`
		Role     string  `json:"role"`
		BranchID *string `json:"branchId"`
	} `json:"user"`
}

// Login аутентифицирует пользователя и сохраняет токен и логин в хранилище.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var res LoginResult
	payload := map[string]string{"username": username, "password": password}
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", nil, payload, &res, ""); err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, errors.New("no token in login response")
	}
	if err := c.Store.Save(res.Token); err != nil {
		return nil, fmt.Errorf("saving auth: %w", err)
	}
	if err := c.Store.SaveLogin(username); err != nil {
		return nil, fmt.Errorf("saving login: %w", err)
	}
	return &res, nil
}

// Logout забывает сохранённый токен.
func (c *Client) Logout() error {
	return c.Store.Clear()
}
