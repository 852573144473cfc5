package validation

import (
	"errors"
	"fmt"

	"github.com/iudanet/colorwin/internal/models"
)

// Ошибки локальной валидации ставки. Это досерверные проверки:
// окончательное решение всегда за сервером.
var (
	// ErrNoColor возвращается, если цвет не выбран
	ErrNoColor = errors.New("select a color")
	// ErrInsufficientBalance возвращается, если ставка превышает известный баланс.
	// Проверка справочная: известный клиенту баланс может быть устаревшим.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ValidateColor проверяет, что цвет выбран и входит в допустимый набор
func ValidateColor(color string) (models.Color, error) {
	if color == "" {
		return "", ErrNoColor
	}

	c, err := models.ParseColor(color)
	if err != nil {
		return "", err
	}

	return c, nil
}

// ValidateAmount проверяет сумму ставки против минимальной ставки
// и известного баланса пользователя
func ValidateAmount(amount, balance float64) error {
	if amount < models.MinStake {
		return fmt.Errorf("minimum stake is %.0f", models.MinStake)
	}

	if amount > balance {
		return ErrInsufficientBalance
	}

	return nil
}
