package cli

import (
	"context"
	"time"

	"github.com/iudanet/colorwin/internal/client/betflow"
)

// liveRefreshInterval — период перерисовки среза активных ставок
const liveRefreshInterval = 3 * time.Second

// runLive показывает активные ставки текущего раунда (административный монитор)
func (c *Cli) runLive(ctx context.Context) error {
	if _, err := c.requireUser(); err != nil {
		return err
	}

	c.monitor.Start(ctx)
	defer c.monitor.Stop()

	c.io.Println("Live bets, press Ctrl+C to stop.")
	c.io.Println()

	ticker := time.NewTicker(liveRefreshInterval)
	defer ticker.Stop()

	var lastRound string
	for {
		select {
		case <-ctx.Done():
			c.io.Println()
			return nil
		case <-ticker.C:
			snapshot, ok := c.monitor.Snapshot()
			if !ok {
				continue
			}

			if snapshot.RoundID != lastRound {
				lastRound = snapshot.RoundID
				c.io.Printf("--- round %s ---\n", snapshot.RoundID)
			}

			c.io.Printf("%d bet(s), total %s\n", len(snapshot.Bets), betflow.FormatAmount(snapshot.Total))
			for _, bet := range snapshot.Bets {
				c.io.Printf("  %-16s %-8s %s\n", bet.Username, bet.Color, betflow.FormatAmount(bet.Amount))
			}
		}
	}
}
