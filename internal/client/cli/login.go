package cli

import (
	"context"
	"fmt"

	apiclient "github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/internal/client/betflow"
	"github.com/iudanet/colorwin/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	user, err := c.session.Login(ctx, email, password)
	if err != nil {
		// Отказ сервера показываем дословно
		if reason := apiclient.RejectionReason(err); reason != "" {
			return fmt.Errorf("%s", reason)
		}
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Balance:  %s\n", betflow.FormatAmount(user.Balance))
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
