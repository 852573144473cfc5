package models

// MinStake минимальная сумма ставки в рупиях
const MinStake = 10.0

// LocalBet представляет действующую ставку пользователя в текущем раунде.
// Живет от подтверждения сервером до расчета (bet-outcome) либо до начала
// нового раунда. Владелец — синхронизатор; остальные слои только читают.
type LocalBet struct {
	RoundID      string
	Color        Color
	Amount       float64
	PotentialWin float64
}

// BetStatus описывает исход расчета ставки
type BetStatus string

const (
	BetWon  BetStatus = "won"
	BetLost BetStatus = "lost"
)

// BetOutcome представляет расчет ставки, присланный сервером.
// Значения никогда не вычисляются на клиенте.
type BetOutcome struct {
	NewBalance *float64 // новый баланс, если сервер его сообщил
	RoundID    string
	Status     BetStatus
	Payout     float64
}
