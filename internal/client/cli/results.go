package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	apiclient "github.com/iudanet/colorwin/internal/client/api"
)

func (c *Cli) runResults(ctx context.Context) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	c.io.Println("=== Recent Results ===")
	c.io.Println()

	results, err := c.api.GetRecentResults(ctx, user.AccessToken)
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			_ = c.session.Invalidate(ctx)
			return fmt.Errorf("session expired. Please run 'colorwin login' again")
		}
		return fmt.Errorf("failed to fetch results: %w", err)
	}

	if len(results) == 0 {
		c.io.Println("No completed rounds yet.")
		return nil
	}

	for i, result := range results {
		c.io.Printf("%2d. %-8s round %s", i+1, result.Result, result.RoundID)
		if !result.EndedAt.IsZero() {
			c.io.Printf("  %s", result.EndedAt.Format(time.RFC3339))
		}
		if result.TotalBets > 0 {
			c.io.Printf("  (%d bets)", result.TotalBets)
		}
		c.io.Println()
	}

	return nil
}
