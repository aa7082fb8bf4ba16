package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	id, err := taskID("get", args)
	if err != nil {
		return err
	}

	task, err := c.dataService.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := taskTemplate.Execute(c.io, task); err != nil {
		return fmt.Errorf("failed to render task: %w", err)
	}
	return nil
}

func (c *Cli) runSetCompleted(ctx context.Context, args []string, completed bool) error {
	command := "undone"
	if completed {
		command = "done"
	}
	id, err := taskID(command, args)
	if err != nil {
		return err
	}

	task, err := c.dataService.SetCompleted(ctx, id, completed)
	if err != nil {
		return err
	}

	c.io.Printf("✓ %s %s\n", checkbox(task.Completed), task.Title)
	return nil
}
