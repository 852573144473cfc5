package api

import "encoding/json"

// EventType определяет класс push-события от сервера
type EventType string

const (
	// EventRoundStarted — сервер объявил новый раунд
	EventRoundStarted EventType = "round-started"
	// EventCountdown — периодический тик обратного отсчета
	EventCountdown EventType = "countdown"
	// EventBettingClosed — окно ставок текущего раунда закрыто
	EventBettingClosed EventType = "betting-closed"
	// EventRoundResult — объявлен результат раунда
	EventRoundResult EventType = "round-result"
	// EventBetOutcome — расчет ставки конкретного пользователя
	EventBetOutcome EventType = "bet-outcome"
)

// Event представляет конверт push-события.
// Payload разбирается получателем по значению Type; порядок доставки
// сервером не гарантируется, обработчики обязаны переживать любой порядок.
type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// RoundStartedPayload — данные события round-started
type RoundStartedPayload struct {
	RoundID          string `json:"round_id"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

// CountdownPayload — данные события countdown.
// Значения применяются клиентом дословно, без локальной интерполяции.
type CountdownPayload struct {
	RemainingSeconds int  `json:"remaining_seconds"`
	IsBettingOpen    bool `json:"is_betting_open"`
}

// BettingClosedPayload — данные события betting-closed (полей нет)
type BettingClosedPayload struct{}

// RoundResultPayload — данные события round-result
type RoundResultPayload struct {
	RoundID string `json:"round_id"`
	Result  string `json:"result"`
}

// BetOutcomePayload — данные события bet-outcome.
// UserID обязателен: комната может быть общей, клиент фильтрует чужие расчеты.
type BetOutcomePayload struct {
	NewBalance *float64 `json:"new_balance,omitempty"`
	UserID     string   `json:"user_id"`
	RoundID    string   `json:"round_id"`
	Status     string   `json:"status"` // won | lost
	Payout     float64  `json:"payout"`
}

// JoinRequest — сообщение клиента для входа в логическую комнату пользователя
type JoinRequest struct {
	Type     string `json:"type"` // всегда "join"
	Room     string `json:"room"` // user:<id>
	DeviceID string `json:"device_id"`
}
