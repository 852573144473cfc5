// Package betflow ведет ставку от ввода пользователя до показа исхода.
// Локальная валидация отсекает заведомо негодные ставки до сети;
// исход ставки определяется только расчетом сервера, клиент никогда
// не сравнивает цвет ставки с цветом результата.
package betflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/colorwin/internal/client/game"
	"github.com/iudanet/colorwin/internal/models"
	"github.com/iudanet/colorwin/internal/validation"
)

//go:generate moq -out rounds_mock.go . RoundService

// RoundService — нужная потоку ставки часть синхронизатора раунда
type RoundService interface {
	// PlaceBet отправляет ставку в текущем раунде
	PlaceBet(ctx context.Context, color models.Color, amount float64) (*models.LocalBet, error)
}

// Flow принимает ставки пользователя
type Flow struct {
	rounds RoundService
	logger *slog.Logger
}

// NewFlow создает поток ставки
func NewFlow(rounds RoundService, logger *slog.Logger) *Flow {
	return &Flow{
		rounds: rounds,
		logger: logger,
	}
}

// Place проверяет и отправляет ставку.
// Валидация против известного баланса справочная: окончательное решение
// за сервером, его отказ возвращается вызывающему дословно.
func (f *Flow) Place(ctx context.Context, colorInput string, amount, balance float64) (*models.LocalBet, error) {
	color, err := validation.ValidateColor(colorInput)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateAmount(amount, balance); err != nil {
		return nil, err
	}

	bet, err := f.rounds.PlaceBet(ctx, color, amount)
	if err != nil {
		return nil, err
	}

	f.logger.Info("bet placed",
		"round_id", bet.RoundID,
		"color", bet.Color,
		"amount", bet.Amount,
		"potential_win", bet.PotentialWin,
	)

	return bet, nil
}

// ResolutionKind описывает исход раунда глазами пользователя
type ResolutionKind string

const (
	// ResolutionNoBet — пользователь не ставил в этом раунде
	ResolutionNoBet ResolutionKind = "no_bet"
	// ResolutionPending — ставка была, расчет сервера еще не пришел
	ResolutionPending ResolutionKind = "pending"
	// ResolutionWon — сервер рассчитал ставку как выигрыш
	ResolutionWon ResolutionKind = "won"
	// ResolutionLost — сервер рассчитал ставку как проигрыш
	ResolutionLost ResolutionKind = "lost"
)

// Resolution — итог раунда для показа пользователю
type Resolution struct {
	NewBalance *float64
	Kind       ResolutionKind
	Result     models.Color
	Payout     float64
}

// Resolve сопоставляет объявленный результат раунда с расчетом ставки.
// Источник истины — bet-outcome сервера, соотнесенный по идентификатору
// раунда; цвет результата используется только для показа.
func Resolve(notice game.ResultNotice, view game.View) Resolution {
	resolution := Resolution{
		Kind:   ResolutionNoBet,
		Result: notice.Result,
	}

	if view.Outcome != nil && view.Outcome.RoundID == notice.RoundID {
		resolution.Payout = view.Outcome.Payout
		resolution.NewBalance = view.Outcome.NewBalance
		if view.Outcome.Status == models.BetWon {
			resolution.Kind = ResolutionWon
		} else {
			resolution.Kind = ResolutionLost
		}
		return resolution
	}

	// Ставка есть, расчет запаздывает
	if view.LocalBet != nil && view.LocalBet.RoundID == notice.RoundID {
		resolution.Kind = ResolutionPending
	}

	return resolution
}

// PotentialWin считает справочный потенциальный выигрыш до ответа сервера
func PotentialWin(color models.Color, amount float64) float64 {
	return amount * color.Multiplier()
}

// FormatAmount форматирует сумму в рупиях для показа
func FormatAmount(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}
