package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "collabase/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"team not found", apperrors.ErrTeamNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"not team creator", apperrors.ErrNotTeamCreator, http.StatusForbidden},
		{"profile incomplete", apperrors.ErrProfileIncomplete, http.StatusForbidden},
		{"wrong intent", apperrors.ErrWrongIntent, http.StatusForbidden},
		{"already on team", apperrors.ErrAlreadyOnTeam, http.StatusConflict},
		{"team closed", apperrors.ErrTeamClosed, http.StatusConflict},
		{"team full", apperrors.ErrTeamFull, http.StatusConflict},
		{"duplicate request", apperrors.ErrDuplicateRequest, http.StatusConflict},
		{"request resolved", apperrors.ErrRequestResolved, http.StatusConflict},
		{"too many pending requests", apperrors.ErrTooManyPendingRequests, http.StatusTooManyRequests},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"refresh token reused", apperrors.ErrRefreshTokenReused, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			FromError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp Response
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.err.Error(), resp.Error)
		})
	}
}

func TestFromError_Unknown(t *testing.T) {
	c, w := setupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	FromError(c, errors.New("something the mapping has never seen"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	// The raw error is not leaked to the client
	assert.NotContains(t, resp.Error, "something the mapping has never seen")
}

func TestFromError_WrappedError(t *testing.T) {
	c, w := setupTestContext()

	FromError(c, errors.Join(apperrors.ErrTeamFull, errors.New("context")))

	assert.Equal(t, http.StatusConflict, w.Code)
}
