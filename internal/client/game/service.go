package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	apiclient "github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/internal/client/push"
	"github.com/iudanet/colorwin/internal/models"
	"github.com/iudanet/colorwin/pkg/api"
)

//go:generate moq -out session_mock.go . Session

// ErrBettingClosed возвращается при попытке поставить вне окна ставок
var ErrBettingClosed = errors.New("betting is closed for the current round")

// resultDisplayDuration — сколько результат раунда остается в снимке
// после объявления, если новый раунд не начался раньше
const resultDisplayDuration = 10 * time.Second

// Session — нужная синхронизатору часть состояния сессии
type Session interface {
	// UserID возвращает идентификатор текущего пользователя
	UserID() string

	// AccessToken возвращает токен текущей сессии
	AccessToken() string

	// SetBalance устанавливает подтвержденный сервером баланс
	SetBalance(ctx context.Context, balance float64) error

	// Invalidate принудительно завершает сессию
	Invalidate(ctx context.Context) error
}

// Service синхронизирует жизненный цикл раунда с сервером.
//
// Владеет всем состоянием раунда единолично: pull-запросы дают начальное
// состояние, push-события его ведут дальше. События обрабатываются
// строго последовательно под одним мьютексом, поэтому переходы
// UNINITIALIZED -> BETTING_OPEN -> BETTING_CLOSED -> RESULT_ANNOUNCED
// никогда не перемешиваются. round-started всегда побеждает: он целиком
// заменяет зеркало раунда и сбрасывает ставку и результат прошлого.
type Service struct {
	api     apiclient.ClientAPI
	channel push.Channel
	session Session
	logger  *slog.Logger
	clock   clockwork.Clock

	// deviceID стабилен на время жизни процесса: сервер различает
	// переподключения одного клиента и новые устройства
	deviceID string

	mu          sync.Mutex
	state       State
	round       *models.Round
	remaining   int
	bettingOpen bool
	localBet    *models.LocalBet
	outcome     *models.BetOutcome
	lastResult  *ResultNotice
	recent      []models.RoundSummary

	initialized bool
	userID      string
	sub         push.Subscription

	// refreshingResults не допускает второй запрос окна результатов,
	// пока не завершился первый
	refreshingResults bool
	dismissTimer      clockwork.Timer

	updates chan View
	results chan ResultNotice
}

// NewService создает синхронизатор раунда
func NewService(apiClient apiclient.ClientAPI, channel push.Channel, sess Session, logger *slog.Logger) *Service {
	return &Service{
		api:      apiClient,
		channel:  channel,
		session:  sess,
		logger:   logger,
		clock:    clockwork.NewRealClock(),
		deviceID: uuid.New().String(),
		state:    StateUninitialized,
		updates:  make(chan View, 1),
		results:  make(chan ResultNotice, 8),
	}
}

// Initialize подготавливает синхронизатор для пользователя: подтягивает
// текущий раунд и окно результатов, затем подписывается на push-события.
//
// Повторный вызов идемпотентен: прежняя подписка снимается до создания
// новой, активный набор подписок всегда ровно один. Ошибки pull-запросов
// не фатальны — состояние доведут события; ошибка подписки фатальна и
// оставляет синхронизатор неинициализированным.
func (s *Service) Initialize(ctx context.Context, userID string) error {
	s.mu.Lock()
	prior := s.sub
	s.sub = nil
	s.initialized = false
	s.userID = userID
	s.mu.Unlock()

	if prior != nil {
		if err := prior.Close(); err != nil {
			s.logger.Warn("failed to close prior subscription", "error", err)
		}
	}

	// Снимок с сервера до подписки: события начнут накладываться
	// на свежее состояние, а не на пустое
	s.refreshCurrentRound(ctx)
	s.refreshRecentResults(ctx)

	sub, err := s.channel.Subscribe(ctx, push.UserRoom(userID), s.deviceID, s.handleEvent)
	if err != nil {
		return fmt.Errorf("failed to subscribe to push events: %w", err)
	}

	s.mu.Lock()
	s.sub = sub
	s.initialized = true
	s.mu.Unlock()

	s.publish()

	return nil
}

// Close снимает подписку и останавливает таймеры.
// Каналы Updates и Results остаются открытыми: потребители могут
// дочитать уже опубликованные снимки.
func (s *Service) Close() error {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.initialized = false
	if s.dismissTimer != nil {
		s.dismissTimer.Stop()
		s.dismissTimer = nil
	}
	s.mu.Unlock()

	if sub != nil {
		return sub.Close()
	}
	return nil
}

// PlaceBet отправляет ставку в текущем раунде.
// Ставка допустима только в состоянии BETTING_OPEN; LocalBet строится
// из значений запроса и ответа сервера, локальная ставка видна в снимке
// до расчета или до начала нового раунда.
func (s *Service) PlaceBet(ctx context.Context, color models.Color, amount float64) (*models.LocalBet, error) {
	s.mu.Lock()
	if s.state != StateBettingOpen || s.round == nil {
		s.mu.Unlock()
		return nil, ErrBettingClosed
	}
	roundID := s.round.ID
	s.mu.Unlock()

	resp, err := s.api.PlaceBet(ctx, s.session.AccessToken(), api.PlaceBetRequest{
		RoundID: roundID,
		Color:   string(color),
		Amount:  amount,
	})
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			if invErr := s.session.Invalidate(ctx); invErr != nil {
				s.logger.Warn("failed to invalidate session", "error", invErr)
			}
		}
		return nil, fmt.Errorf("failed to place bet: %w", err)
	}

	bet := &models.LocalBet{
		RoundID:      roundID,
		Color:        color,
		Amount:       amount,
		PotentialWin: resp.PotentialWin,
	}

	s.mu.Lock()
	// Раунд мог смениться, пока запрос был в полете;
	// ставка устаревшего раунда в зеркало не попадает
	if s.round != nil && s.round.ID == roundID {
		s.localBet = bet
		s.outcome = nil
	}
	s.mu.Unlock()

	if resp.NewBalance != nil {
		if err := s.session.SetBalance(ctx, *resp.NewBalance); err != nil {
			s.logger.Warn("failed to persist balance", "error", err)
		}
	}

	s.publish()

	return bet, nil
}

// Snapshot возвращает атомарный снимок текущего состояния
func (s *Service) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Updates возвращает канал снимков состояния.
// Буфер единичный, побеждает последний снимок: медленный потребитель
// пропускает промежуточные состояния, но всегда видит актуальное.
func (s *Service) Updates() <-chan View {
	return s.updates
}

// Results возвращает канал объявленных результатов раундов.
// Уведомление приходит для каждого раунда независимо от участия
// пользователя в нем.
func (s *Service) Results() <-chan ResultNotice {
	return s.results
}

// handleEvent разбирает конверт push-события и передает его обработчику.
// Вызывается подпиской последовательно, событие за событием.
func (s *Service) handleEvent(event api.Event) {
	switch event.Type {
	case api.EventRoundStarted:
		var payload api.RoundStartedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			s.logger.Warn("malformed round-started payload", "error", err)
			return
		}
		s.handleRoundStarted(payload)

	case api.EventCountdown:
		var payload api.CountdownPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			s.logger.Warn("malformed countdown payload", "error", err)
			return
		}
		s.handleCountdown(payload)

	case api.EventBettingClosed:
		s.handleBettingClosed()

	case api.EventRoundResult:
		var payload api.RoundResultPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			s.logger.Warn("malformed round-result payload", "error", err)
			return
		}
		s.handleRoundResult(payload)

	case api.EventBetOutcome:
		var payload api.BetOutcomePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			s.logger.Warn("malformed bet-outcome payload", "error", err)
			return
		}
		s.handleBetOutcome(payload)

	default:
		s.logger.Debug("ignoring unknown event", "type", event.Type)
	}
}

// handleRoundStarted заменяет зеркало раунда целиком.
// Побеждает над любым текущим состоянием: сбрасывает ставку, расчет
// и показ результата прошлого раунда.
func (s *Service) handleRoundStarted(payload api.RoundStartedPayload) {
	s.mu.Lock()
	s.round = &models.Round{
		ID:               payload.RoundID,
		Status:           models.RoundBetting,
		RemainingSeconds: payload.RemainingSeconds,
	}
	s.remaining = payload.RemainingSeconds
	s.bettingOpen = true
	s.state = StateBettingOpen
	s.localBet = nil
	s.outcome = nil
	s.lastResult = nil
	if s.dismissTimer != nil {
		s.dismissTimer.Stop()
		s.dismissTimer = nil
	}
	s.mu.Unlock()

	s.logger.Debug("round started", "round_id", payload.RoundID,
		"remaining_seconds", payload.RemainingSeconds)

	s.publish()
}

// handleCountdown применяет значения тика дословно, без интерполяции.
// Тик с is_betting_open=false закрывает окно ставок; открыть его заново
// тик не может, обратный переход делает только round-started.
func (s *Service) handleCountdown(payload api.CountdownPayload) {
	s.mu.Lock()
	s.remaining = payload.RemainingSeconds
	if s.round != nil {
		s.round.RemainingSeconds = payload.RemainingSeconds
	}
	if s.state == StateBettingOpen && !payload.IsBettingOpen {
		s.closeBettingLocked()
	}
	s.bettingOpen = payload.IsBettingOpen && s.state == StateBettingOpen
	s.mu.Unlock()

	s.publish()
}

// handleBettingClosed закрывает окно ставок текущего раунда
func (s *Service) handleBettingClosed() {
	s.mu.Lock()
	if s.state == StateBettingOpen {
		s.closeBettingLocked()
	}
	s.mu.Unlock()

	s.publish()
}

// closeBettingLocked переводит раунд в фазу закрытых ставок.
// Вызывается под мьютексом.
func (s *Service) closeBettingLocked() {
	s.state = StateBettingClosed
	s.bettingOpen = false
	if s.round != nil {
		s.round.Status = models.RoundClosed
	}
}

// handleRoundResult объявляет результат раунда.
// Результат чужого раунда игнорируется. Свой результат подразумевает
// закрытые ставки, даже если betting-closed потерялся; окно последних
// результатов обновляется асинхронно, уведомление уходит всем.
func (s *Service) handleRoundResult(payload api.RoundResultPayload) {
	result, err := models.ParseColor(payload.Result)
	if err != nil {
		s.logger.Warn("malformed round result", "round_id", payload.RoundID, "error", err)
		return
	}

	s.mu.Lock()
	if s.round == nil || s.round.ID != payload.RoundID {
		current := ""
		if s.round != nil {
			current = s.round.ID
		}
		s.mu.Unlock()
		s.logger.Debug("ignoring stale round result",
			"round_id", payload.RoundID, "current_round_id", current)
		return
	}

	s.round.Status = models.RoundCompleted
	s.round.Result = result
	s.bettingOpen = false
	s.state = StateResultAnnounced
	notice := ResultNotice{RoundID: payload.RoundID, Result: result}
	s.lastResult = &notice

	if s.dismissTimer != nil {
		s.dismissTimer.Stop()
	}
	s.dismissTimer = s.clock.AfterFunc(resultDisplayDuration, func() {
		s.dismissResult(payload.RoundID)
	})
	s.mu.Unlock()

	select {
	case s.results <- notice:
	default:
		s.logger.Warn("result notice dropped, consumer too slow", "round_id", notice.RoundID)
	}

	// Окно результатов подтягиваем в фоне: обработчик событий не блокируется
	go s.refreshRecentResults(context.Background())

	s.publish()
}

// handleBetOutcome применяет расчет ставки.
// Чужой расчет (другой userId) и расчет устаревшего раунда не меняют
// ничего; свой уничтожает LocalBet и обновляет баланс значением сервера.
func (s *Service) handleBetOutcome(payload api.BetOutcomePayload) {
	if payload.UserID != s.session.UserID() {
		s.logger.Debug("ignoring bet outcome for another user", "user_id", payload.UserID)
		return
	}

	s.mu.Lock()
	matchesRound := s.round != nil && s.round.ID == payload.RoundID
	matchesBet := s.localBet != nil && s.localBet.RoundID == payload.RoundID
	if !matchesRound && !matchesBet {
		s.mu.Unlock()
		s.logger.Debug("ignoring stale bet outcome", "round_id", payload.RoundID)
		return
	}

	s.outcome = &models.BetOutcome{
		NewBalance: payload.NewBalance,
		RoundID:    payload.RoundID,
		Status:     models.BetStatus(payload.Status),
		Payout:     payload.Payout,
	}
	s.localBet = nil
	s.mu.Unlock()

	if payload.NewBalance != nil {
		if err := s.session.SetBalance(context.Background(), *payload.NewBalance); err != nil {
			s.logger.Warn("failed to persist balance", "error", err)
		}
	}

	s.publish()
}

// dismissResult убирает показ результата после таймаута.
// Раунд к этому моменту мог смениться — тогда убирать уже нечего.
func (s *Service) dismissResult(roundID string) {
	s.mu.Lock()
	if s.lastResult == nil || s.lastResult.RoundID != roundID {
		s.mu.Unlock()
		return
	}
	s.lastResult = nil
	s.mu.Unlock()

	s.publish()
}

// refreshCurrentRound подтягивает текущий раунд с сервера.
// Ошибка не фатальна: состояние доведут push-события. Исключение —
// истекшая авторизация, она принудительно завершает сессию.
func (s *Service) refreshCurrentRound(ctx context.Context) {
	resp, err := s.api.GetCurrentRound(ctx, s.session.AccessToken())
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			if invErr := s.session.Invalidate(ctx); invErr != nil {
				s.logger.Warn("failed to invalidate session", "error", invErr)
			}
			return
		}
		s.logger.Debug("failed to fetch current round", "error", err)
		return
	}

	s.mu.Lock()
	s.round = &models.Round{
		ID:               resp.RoundID,
		Status:           models.RoundStatus(resp.Status),
		RemainingSeconds: resp.RemainingSeconds,
	}
	s.remaining = resp.RemainingSeconds
	if resp.Status == string(models.RoundBetting) {
		s.state = StateBettingOpen
		s.bettingOpen = true
	} else {
		s.state = StateBettingClosed
		s.bettingOpen = false
	}
	s.mu.Unlock()
}

// refreshRecentResults подтягивает окно последних результатов.
// Одновременно живет не больше одного запроса; ошибка не фатальна,
// прежнее окно остается на месте.
func (s *Service) refreshRecentResults(ctx context.Context) {
	s.mu.Lock()
	if s.refreshingResults {
		s.mu.Unlock()
		return
	}
	s.refreshingResults = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshingResults = false
		s.mu.Unlock()
	}()

	results, err := s.api.GetRecentResults(ctx, s.session.AccessToken())
	if err != nil {
		s.logger.Debug("failed to fetch recent results", "error", err)
		return
	}

	recent := make([]models.RoundSummary, 0, len(results))
	for _, r := range results {
		color, err := models.ParseColor(r.Result)
		if err != nil {
			s.logger.Warn("skipping result with unknown color",
				"round_id", r.RoundID, "result", r.Result)
			continue
		}
		recent = append(recent, models.RoundSummary{
			StartedAt: r.StartedAt,
			EndedAt:   r.EndedAt,
			RoundID:   r.RoundID,
			Result:    color,
			TotalBets: r.TotalBets,
		})
		if len(recent) == models.RecentResultsLimit {
			break
		}
	}

	s.mu.Lock()
	s.recent = recent
	s.mu.Unlock()

	s.publish()
}

// snapshotLocked собирает копию состояния. Вызывается под мьютексом.
func (s *Service) snapshotLocked() View {
	view := View{
		State:            s.state,
		RemainingSeconds: s.remaining,
		BettingOpen:      s.bettingOpen,
	}
	if s.round != nil {
		round := *s.round
		view.Round = &round
	}
	if s.localBet != nil {
		bet := *s.localBet
		view.LocalBet = &bet
	}
	if s.outcome != nil {
		outcome := *s.outcome
		view.Outcome = &outcome
	}
	if s.lastResult != nil {
		notice := *s.lastResult
		view.LastResult = &notice
	}
	if len(s.recent) > 0 {
		view.RecentResults = make([]models.RoundSummary, len(s.recent))
		copy(view.RecentResults, s.recent)
	}
	return view
}

// publish кладет свежий снимок в канал обновлений.
// При заполненном буфере устаревший снимок вытесняется.
func (s *Service) publish() {
	s.mu.Lock()
	view := s.snapshotLocked()
	s.mu.Unlock()

	for {
		select {
		case s.updates <- view:
			return
		default:
		}
		select {
		case <-s.updates:
		default:
		}
	}
}
