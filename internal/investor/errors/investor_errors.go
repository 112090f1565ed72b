package investorerrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrContributionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contribution not found",
		http.StatusNotFound,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"Contribution kind must be returnable or non_returnable",
		http.StatusBadRequest,
	)
)
