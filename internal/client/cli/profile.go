package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/taskmanager/internal/client/auth"
)

func (c *Cli) runProfile(ctx context.Context) error {
	profile, err := c.authService.Profile(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.io.Printf("Name:    %s\n", profile.Name)
	c.io.Printf("Email:   %s\n", profile.Email)
	c.io.Printf("ID:      %s\n", profile.ID)
	c.io.Printf("Created: %s\n", profile.CreatedAt.Local().Format(time.RFC1123))
	return nil
}

func (c *Cli) runProfileUpdate(ctx context.Context, args []string) error {
	fset := newFlagSet("profile-update")
	name := fset.String("name", "", "New display name")
	changePassword := fset.Bool("password", false, "Change password (prompts for current and new password)")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if *name == "" && !*changePassword {
		return errUsage("taskmanager profile-update [-name NAME] [-password]")
	}

	upd := auth.ProfileUpdate{Name: *name}
	if *changePassword {
		current, err := c.io.ReadPassword("Current password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		newPassword, err := c.promptNewPassword("New password: ")
		if err != nil {
			return err
		}
		upd.CurrentPassword = current
		upd.Password = newPassword
	}

	profile, err := c.authService.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}

	c.io.Println("✓ Profile updated")
	c.io.Printf("Name:  %s\n", profile.Name)
	c.io.Printf("Email: %s\n", profile.Email)
	return nil
}
