package cli

import (
	"context"

	"github.com/iudanet/colorwin/internal/client/betflow"
	"github.com/iudanet/colorwin/internal/client/countdown"
	"github.com/iudanet/colorwin/internal/client/game"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	user, err := c.requireUser()
	if err != nil {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'colorwin login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Balance:  %s\n", betflow.FormatAmount(user.Balance))
	c.io.Println()

	// Текущий раунд, если сервер доступен
	if err := c.rounds.Initialize(ctx, user.UserID); err != nil {
		c.io.Println("Current round: unavailable")
		return nil
	}
	defer func() { _ = c.rounds.Close() }()

	view := c.rounds.Snapshot()
	if view.State == game.StateUninitialized || view.Round == nil {
		c.io.Println("Current round: unavailable")
		return nil
	}

	display := countdown.Render(view.RemainingSeconds, view.BettingOpen)
	c.io.Printf("Round:     %s\n", view.Round.ID)
	c.io.Printf("Countdown: %s\n", display.Time)
	c.io.Printf("Betting:   %s\n", display.Label)
	if view.LocalBet != nil {
		c.io.Printf("Your bet:  %s on %s (potential win %s)\n",
			betflow.FormatAmount(view.LocalBet.Amount),
			view.LocalBet.Color,
			betflow.FormatAmount(view.LocalBet.PotentialWin),
		)
	}

	return nil
}
