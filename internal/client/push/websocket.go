package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/colorwin/pkg/api"
)

// WSChannel реализует Channel поверх websocket-соединения с сервером.
// При обрыве соединения подписка сама переподключается с паузой и заново
// входит в комнату; пропущенные за время обрыва события не доигрываются,
// состояние клиента догоняет сервер на следующем событии.
type WSChannel struct {
	logger        *slog.Logger
	url           string
	reconnectWait time.Duration
}

// Compile-time check that WSChannel implements Channel
var _ Channel = (*WSChannel)(nil)

// NewWSChannel создает websocket-канал push-событий.
// url — адрес вида ws://host:port/ws
func NewWSChannel(url string, logger *slog.Logger) *WSChannel {
	return &WSChannel{
		url:           url,
		logger:        logger,
		reconnectWait: 3 * time.Second,
	}
}

// Subscribe входит в комнату и запускает цикл чтения.
// Первое подключение выполняется синхронно: если сервер недоступен,
// вызывающий получает ошибку и может корректно откатить инициализацию.
func (c *WSChannel) Subscribe(ctx context.Context, room, deviceID string, handler Handler) (Subscription, error) {
	conn, err := c.dial(ctx, room, deviceID)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", room, err)
	}

	subCtx, cancel := context.WithCancel(context.Background())
	sub := &wsSubscription{
		channel:  c,
		room:     room,
		deviceID: deviceID,
		handler:  handler,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go sub.run(subCtx, conn)

	return sub, nil
}

// dial устанавливает соединение и отправляет join-сообщение
func (c *WSChannel) dial(ctx context.Context, room, deviceID string) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", c.url, err)
	}

	join := api.JoinRequest{Type: "join", Room: room, DeviceID: deviceID}
	if err := conn.WriteJSON(join); err != nil {
		conn.Close()
		return nil, fmt.Errorf("join room %s: %w", room, err)
	}

	c.logger.Info("joined push room", "room", room, "url", c.url)
	return conn, nil
}

// wsSubscription владеет одним websocket-соединением и циклом чтения
type wsSubscription struct {
	channel   *WSChannel
	room      string
	deviceID  string
	handler   Handler
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// run читает события до закрытия подписки, переподключаясь при обрывах
func (s *wsSubscription) run(ctx context.Context, conn *websocket.Conn) {
	defer close(s.done)

	for {
		s.readLoop(ctx, conn)

		if ctx.Err() != nil {
			return
		}
		s.channel.logger.Warn("push connection lost, reconnecting",
			"room", s.room, "wait", s.channel.reconnectWait)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.channel.reconnectWait):
		}

		next, err := s.channel.dial(ctx, s.room, s.deviceID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.channel.logger.Warn("push reconnect failed", "room", s.room, "error", err)
			conn = nil
			continue
		}
		conn = next
	}
}

// readLoop обрабатывает сообщения одного соединения до его обрыва.
// События доставляются в handler строго по одному.
func (s *wsSubscription) readLoop(ctx context.Context, conn *websocket.Conn) {
	if conn == nil {
		return
	}

	// Закрываем соединение при отмене подписки, чтобы разблокировать ReadMessage
	connDone := make(chan struct{})
	defer close(connDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-connDone:
		}
	}()
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) || errors.Is(err, context.Canceled) {
				return
			}
			if ctx.Err() == nil {
				s.channel.logger.Warn("push read failed", "room", s.room, "error", err)
			}
			return
		}

		var event api.Event
		if err := json.Unmarshal(message, &event); err != nil {
			// Битый кадр не роняет подписку
			s.channel.logger.Warn("invalid push frame", "room", s.room, "error", err)
			continue
		}

		s.handler(event)
	}
}

// Close освобождает подписку и дожидается остановки цикла чтения
func (s *wsSubscription) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
	})
	<-s.done
	return nil
}
