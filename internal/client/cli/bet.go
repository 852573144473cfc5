package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	apiclient "github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/internal/client/betflow"
	"github.com/iudanet/colorwin/internal/client/game"
)

// resultWaitTimeout ограничивает ожидание результата раунда после ставки
const resultWaitTimeout = 3 * time.Minute

// settlementWait — сколько ждем расчет ставки после объявления результата
const settlementWait = 5 * time.Second

func (c *Cli) runBet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: colorwin bet <red|green|violet> <amount>")
	}

	user, err := c.requireUser()
	if err != nil {
		return err
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	if err := c.rounds.Initialize(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = c.rounds.Close() }()

	bet, err := c.flow.Place(ctx, args[0], amount, user.Balance)
	if err != nil {
		// Отказ сервера показываем дословно
		if reason := apiclient.RejectionReason(err); reason != "" {
			return fmt.Errorf("%s", reason)
		}
		return err
	}

	c.io.Printf("✓ Bet placed: %s on %s, potential win %s\n",
		betflow.FormatAmount(bet.Amount), bet.Color, betflow.FormatAmount(bet.PotentialWin))
	c.io.Println("Waiting for round result...")

	timeout := time.NewTimer(resultWaitTimeout)
	defer timeout.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout.C:
			return fmt.Errorf("timed out waiting for round result")
		case notice := <-c.rounds.Results():
			if notice.RoundID != bet.RoundID {
				continue
			}
			c.printResolution(c.awaitSettlement(ctx, notice))
			return nil
		}
	}
}

// awaitSettlement дает расчету ставки (bet-outcome) время догнать
// объявленный результат, прежде чем показывать итог
func (c *Cli) awaitSettlement(ctx context.Context, notice game.ResultNotice) betflow.Resolution {
	deadline := time.NewTimer(settlementWait)
	defer deadline.Stop()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		view := c.rounds.Snapshot()
		if view.Outcome != nil && view.Outcome.RoundID == notice.RoundID {
			return betflow.Resolve(notice, view)
		}

		select {
		case <-ctx.Done():
			return betflow.Resolve(notice, view)
		case <-deadline.C:
			return betflow.Resolve(notice, view)
		case <-ticker.C:
		}
	}
}

func (c *Cli) printResolution(resolution betflow.Resolution) {
	c.io.Println()
	c.io.Printf("Round result: %s\n", resolution.Result)

	switch resolution.Kind {
	case betflow.ResolutionWon:
		c.io.Printf("🎉 You won %s!\n", betflow.FormatAmount(resolution.Payout))
	case betflow.ResolutionLost:
		c.io.Println("Better luck next round.")
	case betflow.ResolutionPending:
		c.io.Println("Settlement pending, check 'colorwin balance' shortly.")
	case betflow.ResolutionNoBet:
	}

	if resolution.NewBalance != nil {
		c.io.Printf("Balance: %s\n", betflow.FormatAmount(*resolution.NewBalance))
	}
}
