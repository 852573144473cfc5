package game

import (
	"github.com/iudanet/colorwin/internal/models"
)

// State описывает представление клиента о текущем раунде
type State string

const (
	// StateUninitialized — синхронизатор еще не получил текущий раунд
	StateUninitialized State = "uninitialized"
	// StateBettingOpen — окно ставок открыто
	StateBettingOpen State = "betting_open"
	// StateBettingClosed — ставки закрыты, результат не объявлен
	StateBettingClosed State = "betting_closed"
	// StateResultAnnounced — результат раунда объявлен
	StateResultAnnounced State = "result_announced"
)

// ResultNotice сообщает об объявленном результате раунда.
// Рассылается каждому подключенному пользователю независимо от того,
// ставил ли он в этом раунде.
type ResultNotice struct {
	RoundID string
	Result  models.Color
}

// View представляет атомарный снимок состояния раунда.
// Потребители читают один неизменяемый снимок вместо набора независимо
// меняющихся полей: исключается чтение isBettingOpen от одного тика
// вместе с remainingSeconds от другого.
type View struct {
	Round         *models.Round
	LocalBet      *models.LocalBet
	Outcome       *models.BetOutcome
	LastResult    *ResultNotice
	RecentResults []models.RoundSummary
	State         State
	// RemainingSeconds и BettingOpen — последние значения, присланные
	// сервером; клиент их не экстраполирует
	RemainingSeconds int
	BettingOpen      bool
}
