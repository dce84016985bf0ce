package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
гражданского портала (заявки, опросы, отзывы, уведомления).
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Requests ---

var ErrRequestNotFound = New(
	CodeNotFound,
	"request",
	"Service request not found",
	http.StatusNotFound,
)

// --- Polls & Votes ---

var ErrPollNotFound = New(
	CodeNotFound,
	"poll",
	"Poll not found",
	http.StatusNotFound,
)

// ErrPollNotActive - голосование по закрытому опросу запрещено
var ErrPollNotActive = New(
	CodeInvalidOperation,
	"poll",
	"Poll is not active",
	http.StatusBadRequest,
)

// ErrAlreadyVoted - у пользователя уже есть голос в этом опросе
var ErrAlreadyVoted = New(
	CodeConflict,
	"poll",
	"You have already voted on this poll",
	http.StatusConflict,
)

// --- Feedback ---

var ErrFeedbackNotFound = New(
	CodeNotFound,
	"feedback",
	"Feedback not found",
	http.StatusNotFound,
)

// --- Auth & Users ---

var ErrEmailAlreadyExists = New(
	CodeConflict,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)
