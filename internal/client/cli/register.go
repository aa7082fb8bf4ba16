package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context, args []string) error {
	fset := newFlagSet("register")
	passwordFile := fset.String("password-file", "", "Path to file containing password")
	if err := fset.Parse(args); err != nil {
		return err
	}

	c.io.Println("=== Registration ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	c.io.Println("Password: 8-72 characters with upper and lower case letters, a digit and a special character.")
	password, err := c.readNewPassword("Password: ", *passwordFile)
	if err != nil {
		return err
	}

	sess, err := c.authService.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Name:  %s\n", sess.Name)
	c.io.Printf("Email: %s\n", sess.Email)
	c.io.Println("You are now logged in.")
	return nil
}
