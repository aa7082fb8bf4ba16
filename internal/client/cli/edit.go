package cli

import (
	"context"
	"flag"

	"github.com/iudanet/taskmanager/internal/client/data"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	fset := newFlagSet("edit")
	title := fset.String("title", "", "New title")
	description := fset.String("d", "", "New description (empty string clears it)")
	if err := fset.Parse(args); err != nil {
		return err
	}

	id, err := taskID("edit", fset.Args())
	if err != nil {
		return err
	}

	// различаем "флаг не задан" и "задан пустым"
	var edit data.Edit
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			edit.Title = title
		case "d":
			edit.Description = description
		}
	})
	if edit.Title == nil && edit.Description == nil {
		return errUsage("taskmanager edit [-title T] [-d DESCRIPTION] <id>")
	}

	task, err := c.dataService.Edit(ctx, id, edit)
	if err != nil {
		return err
	}

	c.io.Println("✓ Task updated")
	c.io.Printf("%s %s\n", checkbox(task.Completed), task.Title)
	return nil
}
