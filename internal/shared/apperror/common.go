package apperror

import "net/http"

// Cross-cutting sentinels shared by the auth and rbac layers. Feature
// packages define their own sentinels under <feature>/errors instead.
var (
	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)
)
