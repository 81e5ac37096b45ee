// Package apperr содержит доменную таксономию ошибок API.
// Каждая ошибка несёт HTTP-статус и стабильное сообщение для клиента;
// детали хранилища наружу не выходят.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation ошибка входных данных клиента (400)
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound запрошенная сущность не существует (404)
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict состояние данных не допускает операцию (409)
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Internal любая прочая ошибка (500); причина сохраняется для логов
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// From приводит произвольную ошибку к *Error.
// Всё, что не размечено таксономией, считается внутренней ошибкой.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
