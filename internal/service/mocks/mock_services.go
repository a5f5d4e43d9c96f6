// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"collabase/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc  func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc   func(ctx context.Context, req *models.LogoutRequest) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc            func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CompleteOnboardingFunc func(ctx context.Context, id primitive.ObjectID, req *models.OnboardingRequest) (*models.User, error)
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) CompleteOnboarding(ctx context.Context, id primitive.ObjectID, req *models.OnboardingRequest) (*models.User, error) {
	if m.CompleteOnboardingFunc != nil {
		return m.CompleteOnboardingFunc(ctx, id, req)
	}
	return nil, nil
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	CreateTeamFunc   func(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	GetTeamFunc      func(ctx context.Context, teamID primitive.ObjectID) (*models.TeamDetail, error)
	RemoveMemberFunc func(ctx context.Context, teamID, actorID, targetID primitive.ObjectID) error
	LeaveTeamFunc    func(ctx context.Context, teamID, userID primitive.ObjectID, req *models.LeaveTeamRequest) error
	DeleteTeamFunc   func(ctx context.Context, teamID, userID primitive.ObjectID) error
	FinalizeTeamFunc func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Team, error)
	UpdateLinksFunc  func(ctx context.Context, teamID, userID primitive.ObjectID, req *models.UpdateTeamLinksRequest) (*models.Team, error)
}

func (m *MockTeamService) CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.TeamDetail, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) RemoveMember(ctx context.Context, teamID, actorID, targetID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, teamID, actorID, targetID)
	}
	return nil
}

func (m *MockTeamService) LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID, req *models.LeaveTeamRequest) error {
	if m.LeaveTeamFunc != nil {
		return m.LeaveTeamFunc(ctx, teamID, userID, req)
	}
	return nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, teamID, userID primitive.ObjectID) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, teamID, userID)
	}
	return nil
}

func (m *MockTeamService) FinalizeTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Team, error) {
	if m.FinalizeTeamFunc != nil {
		return m.FinalizeTeamFunc(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *MockTeamService) UpdateLinks(ctx context.Context, teamID, userID primitive.ObjectID, req *models.UpdateTeamLinksRequest) (*models.Team, error) {
	if m.UpdateLinksFunc != nil {
		return m.UpdateLinksFunc(ctx, teamID, userID, req)
	}
	return nil, nil
}

// MockJoinRequestService is a mock implementation of JoinRequestServicer.
type MockJoinRequestService struct {
	CreateFunc      func(ctx context.Context, userID primitive.ObjectID, req *models.CreateJoinRequestRequest) (*models.JoinRequest, error)
	ListForTeamFunc func(ctx context.Context, teamID, actorID primitive.ObjectID) (*models.JoinRequestListResponse, error)
	ListMineFunc    func(ctx context.Context, userID primitive.ObjectID) (*models.JoinRequestListResponse, error)
	AcceptFunc      func(ctx context.Context, requestID, actorID primitive.ObjectID) error
	RejectFunc      func(ctx context.Context, requestID, actorID primitive.ObjectID) error
}

func (m *MockJoinRequestService) Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateJoinRequestRequest) (*models.JoinRequest, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockJoinRequestService) ListForTeam(ctx context.Context, teamID, actorID primitive.ObjectID) (*models.JoinRequestListResponse, error) {
	if m.ListForTeamFunc != nil {
		return m.ListForTeamFunc(ctx, teamID, actorID)
	}
	return nil, nil
}

func (m *MockJoinRequestService) ListMine(ctx context.Context, userID primitive.ObjectID) (*models.JoinRequestListResponse, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockJoinRequestService) Accept(ctx context.Context, requestID, actorID primitive.ObjectID) error {
	if m.AcceptFunc != nil {
		return m.AcceptFunc(ctx, requestID, actorID)
	}
	return nil
}

func (m *MockJoinRequestService) Reject(ctx context.Context, requestID, actorID primitive.ObjectID) error {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, requestID, actorID)
	}
	return nil
}

// MockTeamInviteService is a mock implementation of TeamInviteServicer.
type MockTeamInviteService struct {
	CreateFunc      func(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error)
	ListForTeamFunc func(ctx context.Context, teamID, actorID primitive.ObjectID) (*models.InviteListResponse, error)
	ListMineFunc    func(ctx context.Context, userID primitive.ObjectID) (*models.InviteListResponse, error)
	AcceptFunc      func(ctx context.Context, inviteID, userID primitive.ObjectID) (*models.AcceptInviteResponse, error)
	DeclineFunc     func(ctx context.Context, inviteID, userID primitive.ObjectID) error
}

func (m *MockTeamInviteService) Create(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, teamID, actorID, req)
	}
	return nil, nil
}

func (m *MockTeamInviteService) ListForTeam(ctx context.Context, teamID, actorID primitive.ObjectID) (*models.InviteListResponse, error) {
	if m.ListForTeamFunc != nil {
		return m.ListForTeamFunc(ctx, teamID, actorID)
	}
	return nil, nil
}

func (m *MockTeamInviteService) ListMine(ctx context.Context, userID primitive.ObjectID) (*models.InviteListResponse, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTeamInviteService) Accept(ctx context.Context, inviteID, userID primitive.ObjectID) (*models.AcceptInviteResponse, error) {
	if m.AcceptFunc != nil {
		return m.AcceptFunc(ctx, inviteID, userID)
	}
	return nil, nil
}

func (m *MockTeamInviteService) Decline(ctx context.Context, inviteID, userID primitive.ObjectID) error {
	if m.DeclineFunc != nil {
		return m.DeclineFunc(ctx, inviteID, userID)
	}
	return nil
}

// MockMatchmakingService is a mock implementation of MatchmakingServicer.
type MockMatchmakingService struct {
	TeamFeedFunc   func(ctx context.Context) (*models.TeamListResponse, error)
	TopMatchesFunc func(ctx context.Context, userID primitive.ObjectID, topN int) (*models.MatchListResponse, error)
	CandidatesFunc func(ctx context.Context, actorID primitive.ObjectID) (*models.CandidateListResponse, error)
}

func (m *MockMatchmakingService) TeamFeed(ctx context.Context) (*models.TeamListResponse, error) {
	if m.TeamFeedFunc != nil {
		return m.TeamFeedFunc(ctx)
	}
	return nil, nil
}

func (m *MockMatchmakingService) TopMatches(ctx context.Context, userID primitive.ObjectID, topN int) (*models.MatchListResponse, error) {
	if m.TopMatchesFunc != nil {
		return m.TopMatchesFunc(ctx, userID, topN)
	}
	return nil, nil
}

func (m *MockMatchmakingService) Candidates(ctx context.Context, actorID primitive.ObjectID) (*models.CandidateListResponse, error) {
	if m.CandidatesFunc != nil {
		return m.CandidatesFunc(ctx, actorID)
	}
	return nil, nil
}
