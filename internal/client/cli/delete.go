package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fset := newFlagSet("delete")
	yes := fset.Bool("y", false, "Do not ask for confirmation")
	if err := fset.Parse(args); err != nil {
		return err
	}

	id, err := taskID("delete", fset.Args())
	if err != nil {
		return err
	}

	if !*yes {
		answer, err := c.io.ReadInput(fmt.Sprintf("Delete task %s? [y/N]: ", id))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if a := strings.ToLower(answer); a != "y" && a != "yes" {
			c.io.Println("Cancelled")
			return nil
		}
	}

	if err := c.dataService.Delete(ctx, id); err != nil {
		return err
	}

	c.io.Println("✓ Task deleted")
	return nil
}
