package shifterrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)
	ErrOpenShiftExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has an open shift",
		http.StatusConflict,
	)
	ErrShiftNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"Shift is not open",
		http.StatusConflict,
	)
	ErrShiftAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"Shift cash has already been approved",
		http.StatusConflict,
	)
	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shift ID",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Handover amounts must not be negative",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"Shift end must be after its start",
		http.StatusBadRequest,
	)
)
