package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"userpanel/internal/app/client/config"
	"userpanel/internal/domain/user"
)

// httpClient обращается к удаленной коллекции пользователей по HTTP.
// It implements panel.Store. Requests are fire-and-await: no retries,
// no abort path; a failed call surfaces as an error and nothing else.
type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log.With("component", "store_client"),
		baseURL:   baseURL,
		userAgent: "UserPanel-Client/1.0",
	}, nil
}

// List запрашивает список пользователей. Sort and status filter travel
// as query parameters; pagination never does — the panel paginates
// locally over the full result.
func (h *httpClient) List(ctx context.Context, q user.ListQuery) ([]user.User, error) {
	params := url.Values{}
	if q.SortField != "" {
		params.Set("_sort", q.SortField)
		order := q.Order
		if order == "" {
			order = "asc"
		}
		params.Set("_order", order)
	}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}

	path := h.config.UsersPath
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var users []user.User
	if err := h.parseResponse(resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create отправляет новую запись в коллекцию. The id is already
// generated client-side; the store answers 201.
func (h *httpClient) Create(ctx context.Context, u *user.User) error {
	resp, err := h.doRequest(ctx, http.MethodPost, h.config.UsersPath, u)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, u)
}

// Update перезаписывает запись целиком
func (h *httpClient) Update(ctx context.Context, u *user.User) error {
	resp, err := h.doRequest(ctx, http.MethodPut, h.config.UsersPath+"/"+u.ID, u)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, u)
}

// Delete удаляет запись по идентификатору
func (h *httpClient) Delete(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, h.config.UsersPath+"/"+id, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
	)

	if resp.StatusCode == http.StatusNotFound {
		return user.ErrNotFound
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("ошибка сервера: %s", errResp.Error)
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
