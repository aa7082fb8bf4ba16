package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/taskmanager/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	sess, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotLoggedIn):
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'taskmanager login' to authenticate.")
		return nil
	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Status: Session expired")
		c.io.Println()
		c.io.Println("⚠️  Token has expired. Please login again.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Name:   %s\n", sess.Name)
	c.io.Printf("Email:  %s\n", sess.Email)
	if sess.ServerURL != "" {
		c.io.Printf("Server: %s\n", sess.ServerURL)
	}
	c.io.Printf("Token expires: %s\n", sess.ExpiresAt.Format(time.RFC3339))
	c.io.Printf("Time remaining: %s\n", sess.ExpiresAt.Sub(c.now()).Round(time.Second))
	return nil
}
