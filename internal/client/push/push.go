package push

import (
	"context"

	"github.com/iudanet/colorwin/pkg/api"
)

//go:generate moq -out push_mock.go . Channel Subscription

// Handler обрабатывает одно push-событие. Канал вызывает обработчик
// последовательно: следующее событие не будет доставлено, пока обработчик
// не вернется.
type Handler func(event api.Event)

// Subscription представляет активную подписку на комнату пользователя.
// Close освобождает соединение; повторный вызов безопасен.
type Subscription interface {
	Close() error
}

// Channel defines the push side of the remote gateway: a subscription
// facade over the server's notification stream. Delivery is at-most-once
// and ordering is best effort - consumers must tolerate both.
type Channel interface {
	// Subscribe входит в логическую комнату пользователя и доставляет
	// события в handler до закрытия подписки
	Subscribe(ctx context.Context, room, deviceID string, handler Handler) (Subscription, error)
}

// UserRoom возвращает имя персональной комнаты пользователя
func UserRoom(userID string) string {
	return "user:" + userID
}
