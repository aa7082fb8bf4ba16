// Package cli реализует команды терминального клиента.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iudanet/taskmanager/internal/client/auth"
	"github.com/iudanet/taskmanager/internal/client/data"
	"github.com/iudanet/taskmanager/internal/client/iocli"
)

// PasswordEnv позволяет передать пароль без интерактивного ввода (скрипты, CI)
const PasswordEnv = "TASKMANAGER_PASSWORD"

type Cli struct {
	io          iocli.IO
	authService auth.Service
	dataService data.Service
	now         func() time.Time
}

func New(io iocli.IO, authService auth.Service, dataService data.Service) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		now:         time.Now,
	}
}

// readPassword reads a password with priority:
// 1. Environment variable TASKMANAGER_PASSWORD
// 2. File given by --password-file
// 3. Interactive prompt (fallback)
func (c *Cli) readPassword(prompt, fromFile string) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if fromFile != "" {
		content, err := os.ReadFile(fromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// readNewPassword берет пароль из окружения или файла, иначе запрашивает дважды
func (c *Cli) readNewPassword(prompt, fromFile string) (string, error) {
	if os.Getenv(PasswordEnv) != "" || fromFile != "" {
		return c.readPassword(prompt, fromFile)
	}
	return c.promptNewPassword(prompt)
}

// promptNewPassword всегда спрашивает пароль и подтверждение
func (c *Cli) promptNewPassword(prompt string) (string, error) {
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if confirm != password {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

// PrintUsage печатает справку
func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageText)
}
