package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fset := newFlagSet("login")
	passwordFile := fset.String("password-file", "", "Path to file containing password")
	if err := fset.Parse(args); err != nil {
		return err
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.readPassword("Password: ", *passwordFile)
	if err != nil {
		return err
	}

	sess, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Welcome, %s\n", sess.Name)
	c.io.Printf("Session expires: %s\n", sess.ExpiresAt.Local().Format(time.RFC1123))
	return nil
}
