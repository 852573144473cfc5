package api

import (
	"context"

	"github.com/iudanet/colorwin/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the pull side of the remote gateway: plain
// request/response calls to the authority. No business logic lives here.
type ClientAPI interface {
	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)

	// GetProfile возвращает профиль текущего пользователя
	GetProfile(ctx context.Context, accessToken string) (*api.ProfileResponse, error)

	// GetBalance возвращает текущий баланс кошелька
	GetBalance(ctx context.Context, accessToken string) (*api.BalanceResponse, error)

	// GetCurrentRound возвращает текущий раунд
	GetCurrentRound(ctx context.Context, accessToken string) (*api.CurrentRoundResponse, error)

	// GetRecentResults возвращает окно последних результатов (новые первыми)
	GetRecentResults(ctx context.Context, accessToken string) ([]api.RecentResult, error)

	// PlaceBet отправляет ставку в текущем раунде
	PlaceBet(ctx context.Context, accessToken string, req api.PlaceBetRequest) (*api.PlaceBetResponse, error)

	// GetLiveBets возвращает срез активных ставок (административный монитор)
	GetLiveBets(ctx context.Context, accessToken string) (*api.LiveBetsResponse, error)
}
