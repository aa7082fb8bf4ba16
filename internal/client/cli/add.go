package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fset := newFlagSet("add")
	description := fset.String("d", "", "Task description")
	if err := fset.Parse(args); err != nil {
		return err
	}

	title := strings.Join(fset.Args(), " ")
	if title == "" {
		var err error
		title, err = c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}

	task, err := c.dataService.Add(ctx, title, *description)
	if err != nil {
		return err
	}

	c.io.Println("✓ Task created")
	c.io.Printf("ID: %s\n", task.ID)
	return nil
}
