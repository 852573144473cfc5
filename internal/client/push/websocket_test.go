package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/colorwin/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// тестовый push-сервер: принимает join и выдает заранее заданные события
func newPushServer(t *testing.T, handle func(conn *websocket.Conn, join api.JoinRequest)) *httptest.Server {
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		// Первым сообщением клиент обязан прислать join
		var join api.JoinRequest
		require.NoError(t, conn.ReadJSON(&join))
		require.Equal(t, "join", join.Type)

		handle(conn, join)
	}))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func mustEvent(t *testing.T, eventType api.EventType, payload any) api.Event {
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return api.Event{Type: eventType, Data: data}
}

func TestWSChannel_SubscribeDeliversEventsInOrder(t *testing.T) {
	events := []api.Event{
		mustEvent(t, api.EventRoundStarted, api.RoundStartedPayload{RoundID: "r-1", RemainingSeconds: 60}),
		mustEvent(t, api.EventCountdown, api.CountdownPayload{RemainingSeconds: 59, IsBettingOpen: true}),
		mustEvent(t, api.EventBettingClosed, api.BettingClosedPayload{}),
	}

	var joinedRoom atomic.Value
	server := newPushServer(t, func(conn *websocket.Conn, join api.JoinRequest) {
		joinedRoom.Store(join.Room)
		for _, evt := range events {
			require.NoError(t, conn.WriteJSON(evt))
		}
		// Держим соединение, пока клиент не закроет его сам
		_, _, _ = conn.ReadMessage()
	})
	defer server.Close()

	channel := NewWSChannel(wsURL(server), testLogger())

	received := make(chan api.Event, 10)
	sub, err := channel.Subscribe(context.Background(), UserRoom("user-1"), "device-1", func(event api.Event) {
		received <- event
	})
	require.NoError(t, err)
	defer sub.Close()

	// События приходят по одному и в порядке отправки
	for _, want := range events {
		select {
		case got := <-received:
			assert.Equal(t, want.Type, got.Type)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %s", want.Type)
		}
	}

	assert.Equal(t, "user:user-1", joinedRoom.Load())
}

func TestWSChannel_ReconnectsAndRejoins(t *testing.T) {
	var joins atomic.Int32

	server := newPushServer(t, func(conn *websocket.Conn, join api.JoinRequest) {
		n := joins.Add(1)
		if n == 1 {
			// Первое соединение обрываем сразу после одного события
			require.NoError(t, conn.WriteJSON(mustEvent(t, api.EventCountdown,
				api.CountdownPayload{RemainingSeconds: 30, IsBettingOpen: true})))
			return
		}
		// Второе соединение живет и доставляет результат раунда
		require.NoError(t, conn.WriteJSON(mustEvent(t, api.EventRoundResult,
			api.RoundResultPayload{RoundID: "r-1", Result: "green"})))
		_, _, _ = conn.ReadMessage()
	})
	defer server.Close()

	channel := NewWSChannel(wsURL(server), testLogger())
	channel.reconnectWait = 50 * time.Millisecond

	received := make(chan api.Event, 10)
	sub, err := channel.Subscribe(context.Background(), UserRoom("user-1"), "device-1", func(event api.Event) {
		received <- event
	})
	require.NoError(t, err)
	defer sub.Close()

	// Событие до обрыва
	select {
	case got := <-received:
		assert.Equal(t, api.EventCountdown, got.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first event")
	}

	// Событие после переподключения: подписка сама перезашла в комнату
	select {
	case got := <-received:
		assert.Equal(t, api.EventRoundResult, got.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event after reconnect")
	}

	assert.GreaterOrEqual(t, joins.Load(), int32(2))
}

func TestWSChannel_SubscribeFailsWhenServerDown(t *testing.T) {
	server := newPushServer(t, func(conn *websocket.Conn, join api.JoinRequest) {})
	server.Close()

	channel := NewWSChannel(wsURL(server), testLogger())

	_, err := channel.Subscribe(context.Background(), UserRoom("user-1"), "device-1", func(api.Event) {})
	require.Error(t, err)
}

func TestWSChannel_CloseIsIdempotent(t *testing.T) {
	server := newPushServer(t, func(conn *websocket.Conn, join api.JoinRequest) {
		_, _, _ = conn.ReadMessage()
	})
	defer server.Close()

	channel := NewWSChannel(wsURL(server), testLogger())

	sub, err := channel.Subscribe(context.Background(), UserRoom("user-1"), "device-1", func(api.Event) {})
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
}
