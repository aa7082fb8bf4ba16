// Package api is the HTTP client of the task manager REST API.
package api

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

	"github.com/iudanet/taskmanager/pkg/api"
)

// Error is a non-2xx response of the server
type Error struct {
	Message    string
	Fields     []api.FieldError
	StatusCode int
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("server error (%d): %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// IsUnauthorized сообщает, что сервер отклонил токен или учетные данные
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound сообщает, что ресурс не найден
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает токен на сервере
func (c *Client) Logout(ctx context.Context, token string) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Profile возвращает профиль текущего пользователя
func (c *Client) Profile(ctx context.Context, token string) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/user/profile", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile меняет имя и/или пароль
func (c *Client) UpdateProfile(ctx context.Context, token string, req api.UpdateProfileRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodPut, "/api/user/profile", token, req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// CreateTask создает задачу
func (c *Client) CreateTask(ctx context.Context, token string, req api.CreateTaskRequest) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/tasks", token, req, &resp); err != nil {
		return nil, fmt.Errorf("create task request failed: %w", err)
	}
	return &resp, nil
}

// ListTasks возвращает задачи пользователя, новые первыми
func (c *Client) ListTasks(ctx context.Context, token string) ([]api.TaskResponse, error) {
	resp := []api.TaskResponse{}
	if err := c.doRequest(ctx, http.MethodGet, "/api/tasks", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list tasks request failed: %w", err)
	}
	return resp, nil
}

// GetTask возвращает задачу по id
func (c *Client) GetTask(ctx context.Context, token, id string) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.doRequest(ctx, http.MethodGet, taskPath(id), token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get task request failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask частично обновляет задачу
func (c *Client) UpdateTask(ctx context.Context, token, id string, req api.UpdateTaskRequest) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.doRequest(ctx, http.MethodPut, taskPath(id), token, req, &resp); err != nil {
		return nil, fmt.Errorf("update task request failed: %w", err)
	}
	return &resp, nil
}

// DeleteTask удаляет задачу
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, taskPath(id), token, nil, nil); err != nil {
		return fmt.Errorf("delete task request failed: %w", err)
	}
	return nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

func taskPath(id string) string {
	return "/api/tasks/" + url.PathEscape(id)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
			apiErr.Fields = errResp.Fields
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
