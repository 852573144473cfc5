// Package countdown превращает состояние отсчета в готовое представление.
// Чистые функции без состояния: один вход — один выход, все потребители
// (CLI, логи) видят одинаковую разметку.
package countdown

import "fmt"

// Urgency классифицирует остаток времени для выделения в интерфейсе
type Urgency string

const (
	// UrgencyNormal — времени достаточно
	UrgencyNormal Urgency = "normal"
	// UrgencyWarning — осталось 20 секунд и меньше
	UrgencyWarning Urgency = "warning"
	// UrgencyUrgent — осталось 10 секунд и меньше
	UrgencyUrgent Urgency = "urgent"
	// UrgencyClosed — окно ставок закрыто, отсчет не горит
	UrgencyClosed Urgency = "closed"
)

const (
	// LabelBettingOpen показывается при открытом окне ставок
	LabelBettingOpen = "Place your bet!"
	// LabelBettingClosed показывается при закрытом окне ставок
	LabelBettingClosed = "Betting Closed"
)

// Пороги срочности в секундах
const (
	urgentThreshold  = 10
	warningThreshold = 20
)

// Display — готовое к показу представление отсчета
type Display struct {
	Time    string // mm:ss
	Label   string
	Urgency Urgency
}

// Render строит представление отсчета из остатка секунд и фазы ставок.
// Закрытое окно перекрывает любую срочность по времени.
func Render(remainingSeconds int, bettingOpen bool) Display {
	display := Display{
		Time: FormatTime(remainingSeconds),
	}

	if !bettingOpen {
		display.Label = LabelBettingClosed
		display.Urgency = UrgencyClosed
		return display
	}

	display.Label = LabelBettingOpen
	switch {
	case remainingSeconds <= urgentThreshold:
		display.Urgency = UrgencyUrgent
	case remainingSeconds <= warningThreshold:
		display.Urgency = UrgencyWarning
	default:
		display.Urgency = UrgencyNormal
	}

	return display
}

// FormatTime форматирует секунды как mm:ss с ведущими нулями.
// Отрицательный остаток показывается как 00:00.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
