package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/colorwin/internal/client/betflow"
	"github.com/iudanet/colorwin/internal/client/countdown"
	"github.com/iudanet/colorwin/internal/client/game"
)

// runWatch следит за раундами вживую до прерывания
func (c *Cli) runWatch(ctx context.Context) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	if err := c.rounds.Initialize(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = c.rounds.Close() }()

	c.io.Println("Watching rounds, press Ctrl+C to stop.")
	c.io.Println()

	var lastLine string
	for {
		select {
		case <-ctx.Done():
			c.io.Println()
			return nil
		case view := <-c.rounds.Updates():
			line := renderWatchLine(view)
			// Снимки приходят чаще, чем меняется строка
			if line == lastLine {
				continue
			}
			lastLine = line
			c.io.Println(line)
		case notice := <-c.rounds.Results():
			c.printResolution(c.awaitSettlement(ctx, notice))
			c.io.Println()
		}
	}
}

func renderWatchLine(view game.View) string {
	if view.Round == nil {
		return "waiting for round..."
	}

	display := countdown.Render(view.RemainingSeconds, view.BettingOpen)
	line := fmt.Sprintf("round %s  %s  %s", view.Round.ID, display.Time, display.Label)
	if view.LocalBet != nil {
		line += fmt.Sprintf("  [your bet: %s on %s]",
			betflow.FormatAmount(view.LocalBet.Amount), view.LocalBet.Color)
	}
	return line
}
