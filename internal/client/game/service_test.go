package game

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/internal/client/push"
	"github.com/iudanet/colorwin/internal/models"
	"github.com/iudanet/colorwin/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func float64Ptr(v float64) *float64 {
	return &v
}

// fixture собирает синхронизатор на моках и дает прямой доступ
// к обработчику событий подписки
type fixture struct {
	api     *apiclient.ClientAPIMock
	channel *push.ChannelMock
	sub     *push.SubscriptionMock
	session *SessionMock
	handler push.Handler
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		api: &apiclient.ClientAPIMock{
			GetCurrentRoundFunc: func(ctx context.Context, accessToken string) (*api.CurrentRoundResponse, error) {
				return &api.CurrentRoundResponse{RoundID: "r-1", Status: "betting", RemainingSeconds: 45}, nil
			},
			GetRecentResultsFunc: func(ctx context.Context, accessToken string) ([]api.RecentResult, error) {
				return nil, nil
			},
		},
		sub: &push.SubscriptionMock{
			CloseFunc: func() error { return nil },
		},
		session: &SessionMock{
			UserIDFunc:      func() string { return "user-1" },
			AccessTokenFunc: func() string { return "token-1" },
			SetBalanceFunc:  func(ctx context.Context, balance float64) error { return nil },
			InvalidateFunc:  func(ctx context.Context) error { return nil },
		},
	}

	f.channel = &push.ChannelMock{
		SubscribeFunc: func(ctx context.Context, room string, deviceID string, handler push.Handler) (push.Subscription, error) {
			f.handler = handler
			return f.sub, nil
		},
	}

	f.svc = NewService(f.api, f.channel, f.session, testLogger())
	return f
}

func (f *fixture) initialize(t *testing.T) {
	require.NoError(t, f.svc.Initialize(context.Background(), "user-1"))
	require.NotNil(t, f.handler)
}

// deliver подает событие так же, как это делает подписка: синхронно и по одному
func (f *fixture) deliver(t *testing.T, eventType api.EventType, payload any) {
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	f.handler(api.Event{Type: eventType, Data: data})
}

func TestService_InitializeFromPull(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	view := f.svc.Snapshot()
	assert.Equal(t, StateBettingOpen, view.State)
	require.NotNil(t, view.Round)
	assert.Equal(t, "r-1", view.Round.ID)
	assert.Equal(t, 45, view.RemainingSeconds)
	assert.True(t, view.BettingOpen)

	// Подписка ушла в комнату пользователя
	calls := f.channel.SubscribeCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "user:user-1", calls[0].Room)
}

func TestService_InitializeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)
	f.initialize(t)

	// Две инициализации, но активный набор подписок ровно один:
	// прежняя снята до создания новой
	assert.Len(t, f.channel.SubscribeCalls(), 2)
	assert.Len(t, f.sub.CloseCalls(), 1)
}

func TestService_InitializePullFailuresAreSilent(t *testing.T) {
	f := newFixture(t)
	f.api.GetCurrentRoundFunc = func(ctx context.Context, accessToken string) (*api.CurrentRoundResponse, error) {
		return nil, errors.New("network down")
	}
	f.api.GetRecentResultsFunc = func(ctx context.Context, accessToken string) ([]api.RecentResult, error) {
		return nil, errors.New("network down")
	}

	// Ошибки pull-запросов не фатальны: состояние доведут события
	require.NoError(t, f.svc.Initialize(context.Background(), "user-1"))
	assert.Equal(t, StateUninitialized, f.svc.Snapshot().State)

	f.deliver(t, api.EventRoundStarted, api.RoundStartedPayload{RoundID: "r-2", RemainingSeconds: 60})
	assert.Equal(t, StateBettingOpen, f.svc.Snapshot().State)
}

func TestService_InitializeSubscribeFailure(t *testing.T) {
	f := newFixture(t)
	f.channel.SubscribeFunc = func(ctx context.Context, room string, deviceID string, handler push.Handler) (push.Subscription, error) {
		return nil, errors.New("dial failed")
	}

	err := f.svc.Initialize(context.Background(), "user-1")
	require.Error(t, err)

	// Ошибка подписки оставляет синхронизатор без активных подписок
	require.NoError(t, f.svc.Close())
	assert.Empty(t, f.sub.CloseCalls())
}

func TestService_InitializeUnauthorizedInvalidatesSession(t *testing.T) {
	f := newFixture(t)
	f.api.GetCurrentRoundFunc = func(ctx context.Context, accessToken string) (*api.CurrentRoundResponse, error) {
		return nil, apiclient.ErrUnauthorized
	}

	_ = f.svc.Initialize(context.Background(), "user-1")
	assert.NotEmpty(t, f.session.InvalidateCalls())
}

func TestService_RoundStartedAlwaysWins(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	// Раунд r-1: ставка, закрытие, результат
	f.api.PlaceBetFunc = func(ctx context.Context, accessToken string, req api.PlaceBetRequest) (*api.PlaceBetResponse, error) {
		return &api.PlaceBetResponse{PotentialWin: 100}, nil
	}
	_, err := f.svc.PlaceBet(context.Background(), models.ColorGreen, 50)
	require.NoError(t, err)
	f.deliver(t, api.EventRoundResult, api.RoundResultPayload{RoundID: "r-1", Result: "red"})

	view := f.svc.Snapshot()
	require.NotNil(t, view.LocalBet)
	require.NotNil(t, view.LastResult)

	// round-started побеждает над любым состоянием: зеркало заменяется
	// целиком, ставка и результат прошлого раунда исчезают
	f.deliver(t, api.EventRoundStarted, api.RoundStartedPayload{RoundID: "r-2", RemainingSeconds: 60})

	view = f.svc.Snapshot()
	assert.Equal(t, StateBettingOpen, view.State)
	require.NotNil(t, view.Round)
	assert.Equal(t, "r-2", view.Round.ID)
	assert.Equal(t, 60, view.RemainingSeconds)
	assert.Nil(t, view.LocalBet)
	assert.Nil(t, view.Outcome)
	assert.Nil(t, view.LastResult)
}

func TestService_CountdownAppliedVerbatim(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.deliver(t, api.EventCountdown, api.CountdownPayload{RemainingSeconds: 19, IsBettingOpen: true})
	view := f.svc.Snapshot()
	assert.Equal(t, 19, view.RemainingSeconds)
	assert.True(t, view.BettingOpen)
	assert.Equal(t, StateBettingOpen, view.State)

	// Тик с закрытым окном переводит раунд в BETTING_CLOSED
	f.deliver(t, api.EventCountdown, api.CountdownPayload{RemainingSeconds: 0, IsBettingOpen: false})
	view = f.svc.Snapshot()
	assert.Equal(t, 0, view.RemainingSeconds)
	assert.False(t, view.BettingOpen)
	assert.Equal(t, StateBettingClosed, view.State)

	// Обратно окно открывает только round-started, не тик
	f.deliver(t, api.EventCountdown, api.CountdownPayload{RemainingSeconds: 5, IsBettingOpen: true})
	view = f.svc.Snapshot()
	assert.Equal(t, StateBettingClosed, view.State)
	assert.False(t, view.BettingOpen)
}

func TestService_BettingClosedEvent(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.deliver(t, api.EventBettingClosed, api.BettingClosedPayload{})

	view := f.svc.Snapshot()
	assert.Equal(t, StateBettingClosed, view.State)
	assert.False(t, view.BettingOpen)
}

func TestService_RoundResultImpliesClosed(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	// betting-closed потерялся: результат сам закрывает ставки
	f.deliver(t, api.EventRoundResult, api.RoundResultPayload{RoundID: "r-1", Result: "violet"})

	view := f.svc.Snapshot()
	assert.Equal(t, StateResultAnnounced, view.State)
	assert.False(t, view.BettingOpen)
	require.NotNil(t, view.Round)
	assert.Equal(t, models.RoundCompleted, view.Round.Status)
	assert.Equal(t, models.ColorViolet, view.Round.Result)

	// Уведомление о результате уходит независимо от участия пользователя
	select {
	case notice := <-f.svc.Results():
		assert.Equal(t, "r-1", notice.RoundID)
		assert.Equal(t, models.ColorViolet, notice.Result)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for result notice")
	}

	// Окно последних результатов подтягивается заново
	assert.Eventually(t, func() bool {
		return len(f.api.GetRecentResultsCalls()) >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestService_StaleRoundResultIgnored(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.deliver(t, api.EventRoundStarted, api.RoundStartedPayload{RoundID: "r-2", RemainingSeconds: 60})

	// Запоздавший результат r-1 не трогает состояние r-2
	f.deliver(t, api.EventRoundResult, api.RoundResultPayload{RoundID: "r-1", Result: "red"})

	view := f.svc.Snapshot()
	assert.Equal(t, StateBettingOpen, view.State)
	assert.True(t, view.BettingOpen)
	require.NotNil(t, view.Round)
	assert.Equal(t, "r-2", view.Round.ID)
	assert.Empty(t, view.Round.Result)
	assert.Nil(t, view.LastResult)
}

func TestService_PlaceBetWhenClosed(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.deliver(t, api.EventBettingClosed, api.BettingClosedPayload{})

	_, err := f.svc.PlaceBet(context.Background(), models.ColorRed, 50)
	assert.ErrorIs(t, err, ErrBettingClosed)

	// Запрос на сервер не уходил
	assert.Empty(t, f.api.PlaceBetCalls())
}

func TestService_PlaceBetSuccess(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.api.PlaceBetFunc = func(ctx context.Context, accessToken string, req api.PlaceBetRequest) (*api.PlaceBetResponse, error) {
		assert.Equal(t, "token-1", accessToken)
		assert.Equal(t, "r-1", req.RoundID)
		assert.Equal(t, "green", req.Color)
		assert.Equal(t, 50.0, req.Amount)
		return &api.PlaceBetResponse{NewBalance: float64Ptr(450), PotentialWin: 100}, nil
	}

	bet, err := f.svc.PlaceBet(context.Background(), models.ColorGreen, 50)
	require.NoError(t, err)
	assert.Equal(t, "r-1", bet.RoundID)
	assert.Equal(t, models.ColorGreen, bet.Color)
	assert.Equal(t, 50.0, bet.Amount)
	assert.Equal(t, 100.0, bet.PotentialWin)

	// Локальная ставка видна в снимке, баланс взят из ответа сервера
	view := f.svc.Snapshot()
	require.NotNil(t, view.LocalBet)
	assert.Equal(t, *bet, *view.LocalBet)

	calls := f.session.SetBalanceCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 450.0, calls[0].Balance)
}

func TestService_PlaceBetRejectionIsVerbatim(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.api.PlaceBetFunc = func(ctx context.Context, accessToken string, req api.PlaceBetRequest) (*api.PlaceBetResponse, error) {
		return nil, &apiclient.APIError{Reason: "Betting is closed for this round", StatusCode: 400}
	}

	_, err := f.svc.PlaceBet(context.Background(), models.ColorRed, 50)
	require.Error(t, err)

	// Текст отказа сервера доходит до вызывающего дословно
	assert.Equal(t, "Betting is closed for this round", apiclient.RejectionReason(err))
	assert.Nil(t, f.svc.Snapshot().LocalBet)
}

func TestService_BetOutcomeForAnotherUserIgnored(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.deliver(t, api.EventBetOutcome, api.BetOutcomePayload{
		UserID:     "user-2",
		RoundID:    "r-1",
		Status:     "won",
		Payout:     100,
		NewBalance: float64Ptr(999),
	})

	// Чужой расчет не меняет ни снимок, ни баланс
	assert.Nil(t, f.svc.Snapshot().Outcome)
	assert.Empty(t, f.session.SetBalanceCalls())
}

func TestService_StaleBetOutcomeIgnored(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.deliver(t, api.EventRoundStarted, api.RoundStartedPayload{RoundID: "r-2", RemainingSeconds: 60})

	f.deliver(t, api.EventBetOutcome, api.BetOutcomePayload{
		UserID:     "user-1",
		RoundID:    "r-1",
		Status:     "lost",
		NewBalance: float64Ptr(0),
	})

	assert.Nil(t, f.svc.Snapshot().Outcome)
	assert.Empty(t, f.session.SetBalanceCalls())
}

// Полный сценарий выигрыша: ставка 50 на зеленый при балансе 500,
// выплата 100, итоговый баланс 550
func TestService_FullWinScenario(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	f.api.PlaceBetFunc = func(ctx context.Context, accessToken string, req api.PlaceBetRequest) (*api.PlaceBetResponse, error) {
		return &api.PlaceBetResponse{NewBalance: float64Ptr(450), PotentialWin: 100}, nil
	}

	bet, err := f.svc.PlaceBet(context.Background(), models.ColorGreen, 50)
	require.NoError(t, err)
	assert.Equal(t, 100.0, bet.PotentialWin)

	f.deliver(t, api.EventCountdown, api.CountdownPayload{RemainingSeconds: 0, IsBettingOpen: false})
	f.deliver(t, api.EventRoundResult, api.RoundResultPayload{RoundID: "r-1", Result: "green"})
	f.deliver(t, api.EventBetOutcome, api.BetOutcomePayload{
		UserID:     "user-1",
		RoundID:    "r-1",
		Status:     "won",
		Payout:     100,
		NewBalance: float64Ptr(550),
	})

	view := f.svc.Snapshot()
	assert.Equal(t, StateResultAnnounced, view.State)
	require.NotNil(t, view.Round)
	assert.Equal(t, models.ColorGreen, view.Round.Result)

	// Расчет уничтожил локальную ставку
	assert.Nil(t, view.LocalBet)
	require.NotNil(t, view.Outcome)
	assert.Equal(t, models.BetWon, view.Outcome.Status)
	assert.Equal(t, 100.0, view.Outcome.Payout)

	// Баланс менялся только подтвержденными значениями: 450 после
	// списания ставки, 550 после выплаты
	calls := f.session.SetBalanceCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, 450.0, calls[0].Balance)
	assert.Equal(t, 550.0, calls[1].Balance)
}

func TestService_ResultAutoDismiss(t *testing.T) {
	f := newFixture(t)
	fakeClock := clockwork.NewFakeClock()
	f.svc.clock = fakeClock
	f.initialize(t)

	f.deliver(t, api.EventRoundResult, api.RoundResultPayload{RoundID: "r-1", Result: "red"})
	require.NotNil(t, f.svc.Snapshot().LastResult)

	fakeClock.Advance(resultDisplayDuration)

	assert.Eventually(t, func() bool {
		return f.svc.Snapshot().LastResult == nil
	}, time.Second, 10*time.Millisecond)

	// Состояние раунда показ не трогает, убирается только уведомление
	assert.Equal(t, StateResultAnnounced, f.svc.Snapshot().State)
}

func TestService_UpdatesChannelKeepsLatest(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	// Потребитель не читал: промежуточные снимки вытесняются
	f.deliver(t, api.EventCountdown, api.CountdownPayload{RemainingSeconds: 30, IsBettingOpen: true})
	f.deliver(t, api.EventCountdown, api.CountdownPayload{RemainingSeconds: 10, IsBettingOpen: true})

	select {
	case view := <-f.svc.Updates():
		assert.Equal(t, 10, view.RemainingSeconds)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
	}
}

func TestService_RecentResultsWindow(t *testing.T) {
	f := newFixture(t)
	results := make([]api.RecentResult, 0, 12)
	for i := 0; i < 12; i++ {
		results = append(results, api.RecentResult{RoundID: "r", Result: "red"})
	}
	results[0].Result = "green"
	f.api.GetRecentResultsFunc = func(ctx context.Context, accessToken string) ([]api.RecentResult, error) {
		return results, nil
	}

	f.initialize(t)

	// Окно ограничено десятью записями, новые первыми
	view := f.svc.Snapshot()
	require.Len(t, view.RecentResults, models.RecentResultsLimit)
	assert.Equal(t, models.ColorGreen, view.RecentResults[0].Result)
}

func TestService_CloseReleasesSubscription(t *testing.T) {
	f := newFixture(t)
	f.initialize(t)

	require.NoError(t, f.svc.Close())
	assert.Len(t, f.sub.CloseCalls(), 1)

	// Повторный Close безопасен и подписку заново не трогает
	require.NoError(t, f.svc.Close())
	assert.Len(t, f.sub.CloseCalls(), 1)
}
