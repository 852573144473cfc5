package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apiclient "github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/internal/client/storage"
	"github.com/iudanet/colorwin/pkg/api"
)

// ErrNotAuthenticated возвращается операциями, требующими активной сессии
var ErrNotAuthenticated = errors.New("not authenticated")

// User представляет аутентифицированного пользователя в памяти
type User struct {
	UserID      string
	Username    string
	Email       string
	AccessToken string
	Balance     float64
}

// Manager владеет состоянием сессии: идентичностью и балансом.
// Снимок сессии хранится в BoltDB и переживает перезапуски клиента;
// до первого обновления профиля с сервера он используется только как
// оптимистичное отображение.
//
// Баланс меняется единственным путем — SetBalance с подтвержденным
// сервером значением (ответ на ставку, bet-outcome, обновление профиля).
// Клиент никогда не вычисляет баланс сам; при конкурирующих источниках
// побеждает последняя запись, обе сообщают текущее значение сервера.
type Manager struct {
	api     apiclient.ClientAPI
	storage storage.SessionStorage
	logger  *slog.Logger

	mu      sync.RWMutex
	current *User
}

// NewManager создает менеджер сессии
func NewManager(apiClient apiclient.ClientAPI, sessionStorage storage.SessionStorage, logger *slog.Logger) *Manager {
	return &Manager{
		api:     apiClient,
		storage: sessionStorage,
		logger:  logger,
	}
}

// Load восстанавливает сессию из локального снимка.
// Просроченный токен немедленно сбрасывает сессию: пользователь
// возвращается в неаутентифицированное состояние.
func (m *Manager) Load(ctx context.Context) error {
	data, err := m.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if tokenExpired(data.AccessToken) {
		m.logger.Info("stored session expired, clearing", "user_id", data.UserID)
		return m.Invalidate(ctx)
	}

	m.mu.Lock()
	m.current = &User{
		UserID:      data.UserID,
		Username:    data.Username,
		Email:       data.Email,
		AccessToken: data.AccessToken,
		Balance:     data.Balance,
	}
	m.mu.Unlock()

	return nil
}

// Login выполняет аутентификацию и сохраняет снимок сессии
func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	resp, err := m.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	user := &User{
		UserID:      resp.UserID,
		Username:    resp.Username,
		Email:       resp.Email,
		AccessToken: resp.AccessToken,
		Balance:     resp.Balance,
	}

	m.mu.Lock()
	m.current = user
	m.mu.Unlock()

	if err := m.persist(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Logout завершает сессию и удаляет локальный снимок
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.storage.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Invalidate принудительно сбрасывает сессию (протухший токен).
// В отличие от Logout вызывается не пользователем, а ошибкой авторизации.
func (m *Manager) Invalidate(ctx context.Context) error {
	m.logger.Warn("session invalidated, forcing logout")
	return m.Logout(ctx)
}

// RefreshProfile запрашивает профиль с сервера и делает снимок авторитетным
func (m *Manager) RefreshProfile(ctx context.Context) error {
	user, ok := m.User()
	if !ok {
		return ErrNotAuthenticated
	}

	resp, err := m.api.GetProfile(ctx, user.AccessToken)
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			// Авторизация истекла — сессия подлежит немедленному сбросу
			if invErr := m.Invalidate(ctx); invErr != nil {
				return invErr
			}
			return apiclient.ErrUnauthorized
		}
		return fmt.Errorf("profile refresh failed: %w", err)
	}

	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	m.current.UserID = resp.UserID
	m.current.Username = resp.Username
	m.current.Email = resp.Email
	m.current.Balance = resp.Balance
	updated := *m.current
	m.mu.Unlock()

	return m.persist(ctx, &updated)
}

// SetBalance устанавливает подтвержденный сервером баланс.
// Это единственный путь изменения баланса.
func (m *Manager) SetBalance(ctx context.Context, balance float64) error {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	m.current.Balance = balance
	updated := *m.current
	m.mu.Unlock()

	return m.persist(ctx, &updated)
}

// User возвращает копию текущего пользователя
func (m *Manager) User() (*User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, false
	}
	user := *m.current
	return &user, true
}

// UserID возвращает идентификатор текущего пользователя (пустая строка, если сессии нет)
func (m *Manager) UserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return ""
	}
	return m.current.UserID
}

// AccessToken возвращает токен текущей сессии (пустая строка, если сессии нет)
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return ""
	}
	return m.current.AccessToken
}

// Balance возвращает последний известный баланс
func (m *Manager) Balance() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return 0
	}
	return m.current.Balance
}

// persist сохраняет снимок сессии в хранилище
func (m *Manager) persist(ctx context.Context, user *User) error {
	data := &storage.SessionData{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		AccessToken: user.AccessToken,
		Balance:     user.Balance,
		SavedAt:     time.Now().Unix(),
	}

	if err := m.storage.SaveSession(ctx, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// tokenExpired проверяет exp claim токена локально, без проверки подписи.
// Подпись проверяет сервер; клиенту достаточно знать срок действия.
// Токен без exp или неразборный токен считается живым — сервер ответит 401.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
