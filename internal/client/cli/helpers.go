package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrUsage неверные аргументы команды
var ErrUsage = errors.New("usage")

func errUsage(usage string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage)
}

// truncate обрезает строку до n символов для табличного вывода
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
