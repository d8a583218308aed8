package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorString(t *testing.T) {
	err := New("LGR_001", "Caller is not authorized for this operation", http.StatusForbidden)
	assert.Equal(t, "[LGR_001] Caller is not authorized for this operation", err.Error())

	wrapped := Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, errors.New("conn refused"))
	assert.Contains(t, wrapped.Error(), "SYS_001")
	assert.Contains(t, wrapped.Error(), "conn refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("root cause")
	err := InternalError(inner)
	assert.True(t, errors.Is(err, inner))

	var appErr *AppError
	assert.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestErrorConstructors_CodesAndStatuses(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrUnauthorized(), "LGR_001", http.StatusForbidden},
		{ErrInvalidAccount(), "LGR_002", http.StatusNotFound},
		{ErrInactiveAccount(), "LGR_003", http.StatusConflict},
		{ErrAuditNotFound(), "LGR_004", http.StatusNotFound},
		{ErrAuditAlreadyCompleted(), "LGR_005", http.StatusConflict},
		{ErrInvalidAuditor(), "LGR_006", http.StatusBadRequest},
		{ErrInvalidCredentials(), "AUTH_001", http.StatusUnauthorized},
		{ErrUsernameExists(), "AUTH_002", http.StatusConflict},
		{ErrInvalidToken(), "AUTH_003", http.StatusUnauthorized},
		{ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{Validation("bad input"), "VAL_001", http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, "LGR_002", Code(ErrInvalidAccount()))
	assert.Equal(t, "", Code(errors.New("plain")))
	assert.Equal(t, "", Code(nil))
}
