package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if _, ok := c.session.User(); !ok {
		c.io.Println("Not authenticated, nothing to do.")
		return nil
	}

	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logged out, local session cleared.")
	return nil
}
