package registererrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cash register record not found",
		http.StatusNotFound,
	)
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cash expense not found",
		http.StatusNotFound,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid expense category",
		http.StatusBadRequest,
	)
	ErrInvalidSource = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payment source",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"A register record already exists for this date and shift",
		http.StatusConflict,
	)
)
