package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/colorwin/internal/client/session"
)

// Run выполняет команду. Каждая команда, кроме login, требует живой сессии.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "balance":
		return c.runBalance(ctx)
	case "results":
		return c.runResults(ctx)
	case "bet":
		return c.runBet(ctx, args)
	case "watch":
		return c.runWatch(ctx)
	case "live":
		return c.runLive(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireUser возвращает текущего пользователя либо понятную ошибку
func (c *Cli) requireUser() (*session.User, error) {
	user, ok := c.session.User()
	if !ok {
		return nil, fmt.Errorf("not authenticated. Please run 'colorwin login' first")
	}
	return user, nil
}
