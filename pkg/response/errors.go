package response

import (
	"errors"
	"log"
	"net/http"

	apperrors "collabase/internal/errors"

	"github.com/gin-gonic/gin"
)

// statusOf maps a domain error to its HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrRequestNotFound),
		errors.Is(err, apperrors.ErrInviteNotFound):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrNotTeamCreator),
		errors.Is(err, apperrors.ErrNotTeamMember),
		errors.Is(err, apperrors.ErrNotInvited),
		errors.Is(err, apperrors.ErrCannotRemoveCreator),
		errors.Is(err, apperrors.ErrProfileIncomplete),
		errors.Is(err, apperrors.ErrWrongIntent):
		return http.StatusForbidden

	case errors.Is(err, apperrors.ErrWrongTeamState),
		errors.Is(err, apperrors.ErrTeamClosed),
		errors.Is(err, apperrors.ErrTeamLocked),
		errors.Is(err, apperrors.ErrTeamFull),
		errors.Is(err, apperrors.ErrAlreadyOnTeam),
		errors.Is(err, apperrors.ErrRequestResolved),
		errors.Is(err, apperrors.ErrInviteResolved),
		errors.Is(err, apperrors.ErrDuplicateRequest),
		errors.Is(err, apperrors.ErrDuplicateInvite),
		errors.Is(err, apperrors.ErrTeamSizeOutOfRange),
		errors.Is(err, apperrors.ErrMustPromoteFirst),
		errors.Is(err, apperrors.ErrNoOtherMembers),
		errors.Is(err, apperrors.ErrPromotedNotMember),
		errors.Is(err, apperrors.ErrProfileAlreadyCompleted),
		errors.Is(err, apperrors.ErrUserAlreadyExists):
		return http.StatusConflict

	case errors.Is(err, apperrors.ErrTooManyPendingRequests):
		return http.StatusTooManyRequests

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrInvalidRefreshToken),
		errors.Is(err, apperrors.ErrRefreshTokenExpired),
		errors.Is(err, apperrors.ErrRefreshTokenReused):
		return http.StatusUnauthorized

	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the response for a service-layer error. Handlers pass
// errors here verbatim instead of choosing status codes themselves.
// Unrecognized errors are logged and reported as a generic 500.
func FromError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		InternalError(c)
		return
	}
	Error(c, status, err.Error())
}
