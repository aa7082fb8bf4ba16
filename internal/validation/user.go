package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NamePattern: только латинские буквы и пробелы
var NamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

var (
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[\W_]`)
)

const (
	// MinNameLen минимальная длина имени
	MinNameLen = 2
	// MaxNameLen максимальная длина имени
	MaxNameLen = 50
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 100
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxPasswordLen is bcrypt's input limit in bytes.
	MaxPasswordLen = 72
)

// NormalizeName убирает пробелы по краям
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName проверяет отображаемое имя (уже нормализованное)
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("Name is required")
	}

	n := utf8.RuneCountInString(name)
	if n < MinNameLen || n > MaxNameLen {
		return fmt.Errorf("Name must be between %d and %d characters", MinNameLen, MaxNameLen)
	}

	if !NamePattern.MatchString(name) {
		return fmt.Errorf("Name can only contain letters and spaces")
	}

	return nil
}

// NormalizeEmail приводит email к каноническому виду: trim + lower case.
// Уникальность email в хранилище проверяется именно по этому виду.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет формат email (уже нормализованного)
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("Email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return fmt.Errorf("Valid email is required")
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("Valid email is required")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("Email too long")
	}

	return nil
}

// ValidatePassword проверяет требования к новому паролю:
// 8-72 байта, заглавная и строчная буква, цифра, спецсимвол
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("Password is required")
	}

	if len(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		return fmt.Errorf("Password must be between %d and %d characters", MinPasswordLen, MaxPasswordLen)
	}

	switch {
	case !upperPattern.MatchString(password):
		return fmt.Errorf("Password must contain at least one uppercase letter")
	case !lowerPattern.MatchString(password):
		return fmt.Errorf("Password must contain at least one lowercase letter")
	case !digitPattern.MatchString(password):
		return fmt.Errorf("Password must contain at least one number")
	case !specialPattern.MatchString(password):
		return fmt.Errorf("Password must contain at least one special character")
	}

	return nil
}

// ValidateLoginPassword проверяет только наличие пароля при входе.
// Длина и сложность не проверяются: любой непустой пароль сравнивается с хешем.
func ValidateLoginPassword(password string) error {
	if password == "" {
		return fmt.Errorf("Password is required")
	}
	return nil
}
