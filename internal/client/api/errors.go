package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized возвращается на любой ответ 401: токен истек либо отозван.
// Получив эту ошибку, вызывающий слой обязан сбросить сессию.
var ErrUnauthorized = errors.New("unauthorized")

// APIError представляет явный отказ сервера (business rejection).
// Reason — причина для показа пользователю, передается дословно.
type APIError struct {
	Reason     string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Reason)
}

// RejectionReason извлекает пользовательскую причину отказа из ошибки.
// Возвращает пустую строку, если ошибка не является отказом сервера
// (например, сеть недоступна).
func RejectionReason(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Reason
	}
	return ""
}
