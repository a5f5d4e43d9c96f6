// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserAlreadyExists       = errors.New("user with this email already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrProfileIncomplete       = errors.New("complete your profile before using matchmaking")
	ErrProfileAlreadyCompleted = errors.New("profile is already completed")
	ErrWrongIntent             = errors.New("this action is not available for your onboarding intent")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenReused  = errors.New("refresh token reuse detected")
)

// Team errors
var (
	ErrTeamNotFound        = errors.New("team not found")
	ErrNotTeamCreator      = errors.New("only the team creator can do this")
	ErrNotTeamMember       = errors.New("you are not a member of this team")
	ErrTeamFull            = errors.New("team is full")
	ErrTeamClosed          = errors.New("team is not open")
	ErrTeamLocked          = errors.New("team is locked")
	ErrWrongTeamState      = errors.New("operation not allowed in the team's current state")
	ErrAlreadyOnTeam       = errors.New("user is already on a team")
	ErrCannotRemoveCreator = errors.New("cannot remove the team creator")
	ErrMustPromoteFirst    = errors.New("creator must promote another member before leaving")
	ErrNoOtherMembers      = errors.New("no other members to promote, delete the team instead")
	ErrTeamSizeOutOfRange  = errors.New("team must have between 3 and 5 members to finalize")
	ErrPromotedNotMember   = errors.New("promoted user is not a member of this team")
)

// Join request errors
var (
	ErrRequestNotFound        = errors.New("join request not found")
	ErrRequestResolved        = errors.New("join request is already resolved")
	ErrTooManyPendingRequests = errors.New("you already have 3 pending join requests")
	ErrDuplicateRequest       = errors.New("you already have a pending request for this team")
)

// Invite errors
var (
	ErrInviteNotFound  = errors.New("invite not found")
	ErrInviteResolved  = errors.New("invite is already resolved")
	ErrNotInvited      = errors.New("this invite is not addressed to you")
	ErrDuplicateInvite = errors.New("a pending invite for this user already exists")
)
