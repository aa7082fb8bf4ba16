package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Name     string `json:"name"`     // отображаемое имя
	Email    string `json:"email"`    // email, используется как логин
	Password string `json:"password"` // пароль в открытом виде (только по TLS)
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse возвращается после успешной регистрации или входа
type AuthResponse struct {
	ExpiresAt time.Time `json:"expires_at"` // момент истечения токена
	Token     string    `json:"token"`      // JWT для заголовка Authorization: Bearer
	ID        string    `json:"id"`         // UUID пользователя
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string       `json:"error"`             // текст HTTP статуса
	Message string       `json:"message,omitempty"` // дополнительное сообщение
	Fields  []FieldError `json:"fields,omitempty"`  // ошибки валидации по полям
}

// FieldError описывает ошибку валидации одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
