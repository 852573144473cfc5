package api

import "time"

// CurrentRoundResponse представляет текущий раунд со стороны сервера.
// RemainingSeconds отражает последнее известное серверу значение; клиент
// не экстраполирует его локально.
type CurrentRoundResponse struct {
	RoundID          string `json:"round_id"`          // идентификатор раунда
	Status           string `json:"status"`            // betting | closed | completed
	RemainingSeconds int    `json:"remaining_seconds"` // остаток времени в секундах
}

// RecentResult представляет итог одного завершенного раунда
type RecentResult struct {
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	RoundID   string    `json:"round_id"`
	Result    string    `json:"result"`
	TotalBets int       `json:"total_bets"`
}

// PlaceBetRequest представляет запрос на ставку в текущем раунде
type PlaceBetRequest struct {
	RoundID string  `json:"round_id"`
	Color   string  `json:"color"`
	Amount  float64 `json:"amount"`
}

// PlaceBetResponse представляет подтверждение принятой ставки.
// NewBalance присутствует, если сервер уже списал сумму ставки.
type PlaceBetResponse struct {
	NewBalance   *float64 `json:"new_balance,omitempty"`
	PotentialWin float64  `json:"potential_win"`
}

// LiveBet представляет одну активную ставку для административного монитора
type LiveBet struct {
	Username string  `json:"username"`
	Color    string  `json:"color"`
	Amount   float64 `json:"amount"`
}

// LiveBetsResponse представляет срез активных ставок текущего раунда
type LiveBetsResponse struct {
	RoundID string    `json:"round_id"`
	Bets    []LiveBet `json:"bets"`
	Total   float64   `json:"total"`
}
