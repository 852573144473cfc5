package models

import (
	"fmt"
	"time"
)

// RoundStatus описывает фазу раунда, как ее сообщает сервер
type RoundStatus string

const (
	// RoundBetting — окно ставок открыто
	RoundBetting RoundStatus = "betting"
	// RoundClosed — ставки закрыты, результат еще не объявлен
	RoundClosed RoundStatus = "closed"
	// RoundCompleted — раунд завершен, результат известен
	RoundCompleted RoundStatus = "completed"
)

// Color представляет исход раунда
type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorViolet Color = "violet"
)

// ParseColor проверяет и нормализует цвет, полученный от пользователя или сервера
func ParseColor(s string) (Color, error) {
	switch Color(s) {
	case ColorRed, ColorGreen, ColorViolet:
		return Color(s), nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}

// Multiplier возвращает справочный коэффициент выплаты для цвета.
// Используется только для отображения potential win до ответа сервера;
// фактическую выплату всегда считает сервер.
func (c Color) Multiplier() float64 {
	switch c {
	case ColorViolet:
		return 4.5
	case ColorRed, ColorGreen:
		return 2.0
	}
	return 0
}

// Round представляет локальное зеркало текущего раунда.
// Ровно один Round является текущим; новое объявление раунда заменяет
// зеркало целиком, а не сливается с ним.
type Round struct {
	ID               string      // идентификатор, выдается сервером монотонно
	Status           RoundStatus // betting | closed | completed
	Result           Color       // заполнен только при Status == completed
	RemainingSeconds int         // последнее известное значение с сервера
}

// RoundSummary представляет итог одного завершенного раунда
// в окне последних результатов (не более 10, новые первыми)
type RoundSummary struct {
	StartedAt time.Time
	EndedAt   time.Time
	RoundID   string
	Result    Color
	TotalBets int
}

// RecentResultsLimit ограничивает окно последних результатов
const RecentResultsLimit = 10
