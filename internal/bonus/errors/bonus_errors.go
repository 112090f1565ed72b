package bonuserrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrBonusNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bonus not found",
		http.StatusNotFound,
	)
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found for this bonus",
		http.StatusNotFound,
	)
	ErrInvalidBonusType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid bonus type",
		http.StatusBadRequest,
	)
	ErrShiftSettled = apperror.New(
		apperror.CodeInvalidState,
		"Bonuses are locked once the shift salary has been paid",
		http.StatusConflict,
	)
	ErrShiftArchived = apperror.New(
		apperror.CodeInvalidState,
		"Cannot add a bonus to an archived shift",
		http.StatusConflict,
	)
)
