package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// LoginResponse представляет ответ с токеном доступа и профилем
type LoginResponse struct {
	AccessToken string  `json:"access_token"` // JWT access token
	UserID      string  `json:"user_id"`      // идентификатор пользователя
	Username    string  `json:"username"`     // отображаемое имя
	Email       string  `json:"email"`        // email
	Balance     float64 `json:"balance"`      // текущий баланс
}

// ProfileResponse представляет профиль пользователя
type ProfileResponse struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Balance  float64 `json:"balance"`
}

// BalanceResponse представляет ответ кошелька с текущим балансом
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // причина для показа пользователю
}
