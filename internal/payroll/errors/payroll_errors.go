package payrollerrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNoPayableShifts = apperror.New(
		apperror.CodeInvalidState,
		"Employee has no closed shifts in this period",
		http.StatusConflict,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Payment amount must not be negative",
		http.StatusBadRequest,
	)
)
