package autherrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidOrg = apperror.New(
		apperror.CodeInvalidInput,
		"invalid org",
		http.StatusBadRequest,
	)
	// One error for unknown email, inactive user and wrong password so the
	// response never reveals which accounts exist.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to generate token",
		http.StatusInternalServerError,
	)
)
