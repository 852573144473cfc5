// Package admin реализует монитор активных ставок текущего раунда.
// Сервер не шлет push-события по ставкам других игроков, поэтому срез
// подтягивается периодическим опросом.
package admin

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	apiclient "github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/pkg/api"
)

// defaultPollInterval — период опроса среза активных ставок
const defaultPollInterval = 3 * time.Second

// TokenSource выдает токен текущей сессии
type TokenSource interface {
	AccessToken() string
}

// LiveSnapshot — срез активных ставок раунда на момент опроса
type LiveSnapshot struct {
	FetchedAt time.Time
	RoundID   string
	Bets      []api.LiveBet
	Total     float64
}

// Monitor периодически опрашивает срез активных ставок.
// Неудачный опрос не фатален: прежний срез остается на месте,
// следующий тик попробует снова.
type Monitor struct {
	api      apiclient.ClientAPI
	tokens   TokenSource
	logger   *slog.Logger
	clock    clockwork.Clock
	interval time.Duration

	mu       sync.Mutex
	snapshot *LiveSnapshot

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor создает монитор активных ставок
func NewMonitor(apiClient apiclient.ClientAPI, tokens TokenSource, logger *slog.Logger) *Monitor {
	return &Monitor{
		api:      apiClient,
		tokens:   tokens,
		logger:   logger,
		clock:    clockwork.NewRealClock(),
		interval: defaultPollInterval,
	}
}

// Start запускает цикл опроса. Первый опрос выполняется сразу,
// дальше по тикеру. Повторный Start без Stop недопустим.
func (m *Monitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(ctx)
}

// Stop останавливает цикл опроса и дожидается его завершения
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.cancel = nil
}

// Snapshot возвращает последний успешно полученный срез
func (m *Monitor) Snapshot() (*LiveSnapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snapshot == nil {
		return nil, false
	}
	snapshot := *m.snapshot
	snapshot.Bets = make([]api.LiveBet, len(m.snapshot.Bets))
	copy(snapshot.Bets, m.snapshot.Bets)
	return &snapshot, true
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	m.poll(ctx)

	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			m.poll(ctx)
		}
	}
}

// poll подтягивает срез активных ставок с сервера
func (m *Monitor) poll(ctx context.Context) {
	resp, err := m.api.GetLiveBets(ctx, m.tokens.AccessToken())
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			m.logger.Warn("live bets poll unauthorized")
			return
		}
		m.logger.Debug("live bets poll failed", "error", err)
		return
	}

	m.mu.Lock()
	m.snapshot = &LiveSnapshot{
		FetchedAt: m.clock.Now(),
		RoundID:   resp.RoundID,
		Bets:      resp.Bets,
		Total:     resp.Total,
	}
	m.mu.Unlock()
}
