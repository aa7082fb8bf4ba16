package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/taskmanager/pkg/api"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	fset := newFlagSet("list")
	status := fset.String("status", "all", "Filter: all, done or pending")
	if err := fset.Parse(args); err != nil {
		return err
	}

	var keep func(api.TaskResponse) bool
	switch *status {
	case "all":
		keep = func(api.TaskResponse) bool { return true }
	case "done":
		keep = func(t api.TaskResponse) bool { return t.Completed }
	case "pending":
		keep = func(t api.TaskResponse) bool { return !t.Completed }
	default:
		return fmt.Errorf("unknown status filter: %s. Use: all, done or pending", *status)
	}

	tasks, err := c.dataService.List(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Tasks ===")
	c.io.Println()

	// Сервер уже отдает задачи от новых к старым
	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	shown, done := 0, 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
		if !keep(t) {
			continue
		}
		shown++
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			checkbox(t.Completed), t.ID, truncate(t.Title, 40), t.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if shown == 0 {
		c.io.Println("No tasks found.")
	}
	c.io.Println()
	c.io.Printf("Total: %d, done: %d, pending: %d\n", len(tasks), done, len(tasks)-done)
	return nil
}
