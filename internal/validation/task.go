package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinTitleLen       = 2
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

// NormalizeText trims surrounding whitespace from free-form task fields.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// ValidateTitle проверяет заголовок задачи (уже нормализованный)
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("Task title is required")
	}
	n := utf8.RuneCountInString(title)
	if n < MinTitleLen || n > MaxTitleLen {
		return fmt.Errorf("Title must be between %d and %d characters", MinTitleLen, MaxTitleLen)
	}
	return nil
}

// ValidateDescription проверяет описание задачи; пустое описание допустимо
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return fmt.Errorf("Description cannot exceed %d characters", MaxDescriptionLen)
	}
	return nil
}
