// Package service contains business logic for the application.
package service

import (
	"context"

	"collabase/internal/database"
	"collabase/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TxRunner runs a function inside a database transaction. Services depend on
// this boundary instead of the concrete database so unit tests can stub it.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MemberAdder is the internal membership primitive shared by the accept
// paths. It must be called inside a transaction context.
type MemberAdder interface {
	AddMemberInTx(ctx context.Context, teamID, userID primitive.ObjectID) error
}

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CompleteOnboarding(ctx context.Context, id primitive.ObjectID, req *models.OnboardingRequest) (*models.User, error)
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.TeamDetail, error)
	RemoveMember(ctx context.Context, teamID, actorID, targetID primitive.ObjectID) error
	LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID, req *models.LeaveTeamRequest) error
	DeleteTeam(ctx context.Context, teamID, userID primitive.ObjectID) error
	FinalizeTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Team, error)
	UpdateLinks(ctx context.Context, teamID, userID primitive.ObjectID, req *models.UpdateTeamLinksRequest) (*models.Team, error)
}

// JoinRequestServicer defines the interface for join request operations.
type JoinRequestServicer interface {
	Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateJoinRequestRequest) (*models.JoinRequest, error)
	ListForTeam(ctx context.Context, teamID, actorID primitive.ObjectID) (*models.JoinRequestListResponse, error)
	ListMine(ctx context.Context, userID primitive.ObjectID) (*models.JoinRequestListResponse, error)
	Accept(ctx context.Context, requestID, actorID primitive.ObjectID) error
	Reject(ctx context.Context, requestID, actorID primitive.ObjectID) error
}

// TeamInviteServicer defines the interface for team invite operations.
type TeamInviteServicer interface {
	Create(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error)
	ListForTeam(ctx context.Context, teamID, actorID primitive.ObjectID) (*models.InviteListResponse, error)
	ListMine(ctx context.Context, userID primitive.ObjectID) (*models.InviteListResponse, error)
	Accept(ctx context.Context, inviteID, userID primitive.ObjectID) (*models.AcceptInviteResponse, error)
	Decline(ctx context.Context, inviteID, userID primitive.ObjectID) error
}

// MatchmakingServicer defines the interface for matchmaking operations.
type MatchmakingServicer interface {
	TeamFeed(ctx context.Context) (*models.TeamListResponse, error)
	TopMatches(ctx context.Context, userID primitive.ObjectID, topN int) (*models.MatchListResponse, error)
	Candidates(ctx context.Context, actorID primitive.ObjectID) (*models.CandidateListResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ TxRunner            = (*database.MongoDB)(nil)
	_ MemberAdder         = (*TeamService)(nil)
	_ AuthServicer        = (*AuthService)(nil)
	_ UserServicer        = (*UserService)(nil)
	_ TeamServicer        = (*TeamService)(nil)
	_ JoinRequestServicer = (*JoinRequestService)(nil)
	_ TeamInviteServicer  = (*TeamInviteService)(nil)
	_ MatchmakingServicer = (*MatchmakingService)(nil)
)
