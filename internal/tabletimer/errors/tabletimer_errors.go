package tabletimererrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrTimerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timer not found",
		http.StatusNotFound,
	)
	ErrTimerAlreadyRunning = apperror.New(
		apperror.CodeConflict,
		"This table already has a running timer",
		http.StatusConflict,
	)
	ErrTimerNotRunning = apperror.New(
		apperror.CodeInvalidState,
		"Timer is not running",
		http.StatusConflict,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"Hourly rate must be greater than zero",
		http.StatusBadRequest,
	)
)
