package reconcileerrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrNothingPending = apperror.New(
		apperror.CodeNotFound,
		"No pending handovers for this date and shift",
		http.StatusNotFound,
	)
	ErrAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"This handover group has already been approved",
		http.StatusConflict,
	)
	ErrUnknownShiftOverride = apperror.New(
		apperror.CodeInvalidInput,
		"Shortage override references a shift outside this group",
		http.StatusBadRequest,
	)
	ErrOverrideMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Shortage overrides must sum to the group shortage",
		http.StatusBadRequest,
	)
)
