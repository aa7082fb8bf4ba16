package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

// ErrUnknownCommand неизвестная команда
var ErrUnknownCommand = errors.New("unknown command")

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx, args)
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "profile-update":
		return c.runProfileUpdate(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "done":
		return c.runSetCompleted(ctx, args, true)
	case "undone":
		return c.runSetCompleted(ctx, args, false)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// newFlagSet создает набор флагов команды, ошибки возвращаются вызывающему
func newFlagSet(name string) *flag.FlagSet {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	return fset
}

// taskID достает единственный позиционный аргумент
func taskID(command string, args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", fmt.Errorf("missing task ID. Usage: taskmanager %s <id>", command)
	}
	return args[0], nil
}
