package exporterrors

import (
	"net/http"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/apperror"
)

var (
	ErrSheetsNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"Google Sheets export is not configured",
		http.StatusServiceUnavailable,
	)
	ErrSheetsPushFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Failed to push rows to Google Sheets",
		http.StatusBadGateway,
	)
)
