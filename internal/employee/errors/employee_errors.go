package employeeerrors

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
	ErrEmployeeNameTaken = apperror.New(
		apperror.CodeConflict,
		"An employee with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Employee is deactivated",
		http.StatusConflict,
	)
)
