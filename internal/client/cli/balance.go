package cli

import (
	"context"
	"errors"
	"fmt"

	apiclient "github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/internal/client/betflow"
)

func (c *Cli) runBalance(ctx context.Context) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	// Показываем только подтвержденный сервером баланс
	resp, err := c.api.GetBalance(ctx, user.AccessToken)
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			_ = c.session.Invalidate(ctx)
			return fmt.Errorf("session expired. Please run 'colorwin login' again")
		}
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	if err := c.session.SetBalance(ctx, resp.Balance); err != nil {
		return err
	}

	c.io.Printf("Balance: %s\n", betflow.FormatAmount(resp.Balance))
	return nil
}
