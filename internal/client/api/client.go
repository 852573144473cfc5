package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/colorwin/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
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

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	err := c.doRequest(ctx, "POST", "/api/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// GetProfile возвращает профиль текущего пользователя
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	err := c.doRequest(ctx, "GET", "/api/auth/profile", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// GetBalance возвращает текущий баланс кошелька
func (c *Client) GetBalance(ctx context.Context, accessToken string) (*api.BalanceResponse, error) {
	var resp api.BalanceResponse
	err := c.doRequest(ctx, "GET", "/api/wallet/balance", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get balance request failed: %w", err)
	}
	return &resp, nil
}

// GetCurrentRound возвращает текущий раунд
func (c *Client) GetCurrentRound(ctx context.Context, accessToken string) (*api.CurrentRoundResponse, error) {
	var resp api.CurrentRoundResponse
	err := c.doRequest(ctx, "GET", "/api/game/current", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get current round request failed: %w", err)
	}
	return &resp, nil
}

// GetRecentResults возвращает окно последних результатов
func (c *Client) GetRecentResults(ctx context.Context, accessToken string) ([]api.RecentResult, error) {
	var resp []api.RecentResult
	err := c.doRequest(ctx, "GET", "/api/game/recent-results", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get recent results request failed: %w", err)
	}
	return resp, nil
}

// PlaceBet отправляет ставку в текущем раунде
func (c *Client) PlaceBet(ctx context.Context, accessToken string, req api.PlaceBetRequest) (*api.PlaceBetResponse, error) {
	var resp api.PlaceBetResponse
	err := c.doRequest(ctx, "POST", "/api/game/bet", accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("place bet request failed: %w", err)
	}
	return &resp, nil
}

// GetLiveBets возвращает срез активных ставок текущего раунда
func (c *Client) GetLiveBets(ctx context.Context, accessToken string) (*api.LiveBetsResponse, error) {
	var resp api.LiveBetsResponse
	err := c.doRequest(ctx, "GET", "/api/admin/live-bets", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get live bets request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
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

	// 401 всегда означает протухшую сессию
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			reason := errResp.Message
			if reason == "" {
				reason = errResp.Error
			}
			if reason != "" {
				return &APIError{StatusCode: resp.StatusCode, Reason: reason}
			}
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
