package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost стоимость bcrypt по умолчанию
const DefaultCost = 12

// ErrMismatch возвращается, если пароль не совпадает с хешем
var ErrMismatch = errors.New("password does not match hash")

// maxInputLen длина, дальше которой bcrypt не читает пароль
const maxInputLen = 72

// HashPassword хеширует пароль с помощью bcrypt (соль генерируется внутри)
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	if cost == 0 {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword сравнивает пароль с сохраненным хешем за постоянное время
func VerifyPassword(password, hash string) error {
	if hash == "" {
		return fmt.Errorf("hashed password cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// bcrypt сравнивает только первые 72 байта, более длинный пароль не может совпасть
	if err == nil && len(password) > maxInputLen {
		return ErrMismatch
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}

	return nil
}

// NewDummyHash хеширует случайный пароль с заданной стоимостью.
// Хеш нужен BurnCompare: стоимость должна совпадать с хешами пользователей.
func NewDummyHash(cost int) (string, error) {
	return HashPassword(rand.Text(), cost)
}

// BurnCompare выполняет сравнение с фиктивным хешем и отбрасывает результат,
// чтобы ответ для неизвестного пользователя занимал столько же времени.
func BurnCompare(dummyHash, password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
