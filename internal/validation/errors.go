package validation

import "strings"

// FieldError описывает ошибку валидации одного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors накапливает ошибки валидации в порядке проверки полей
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add добавляет ошибку для поля
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Check добавляет ошибку, если err != nil
func (e *Errors) Check(field string, err error) {
	if err != nil {
		e.Add(field, err.Error())
	}
}

// Err возвращает nil, если ошибок нет, иначе сам набор ошибок
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
