package poserrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrSalesAPIUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Sales API is unavailable",
		http.StatusBadGateway,
	)
	ErrInvalidShiftType = apperror.New(
		apperror.CodeInvalidInput,
		"Shift type must be day or night",
		http.StatusBadRequest,
	)
)
