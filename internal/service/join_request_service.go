package service

import (
	"context"
	"errors"

	apperrors "collabase/internal/errors"
	"collabase/internal/models"
	"collabase/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JoinRequestService handles join request business logic.
type JoinRequestService struct {
	requestRepo repository.JoinRequestRepository
	teamRepo    repository.TeamRepository
	userRepo    repository.UserRepository
	members     MemberAdder
	tx          TxRunner
}

// NewJoinRequestService creates a new JoinRequestService.
func NewJoinRequestService(requestRepo repository.JoinRequestRepository, teamRepo repository.TeamRepository, userRepo repository.UserRepository, members MemberAdder, tx TxRunner) *JoinRequestService {
	return &JoinRequestService{
		requestRepo: requestRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		members:     members,
		tx:          tx,
	}
}

// Create files a join request against an OPEN team. The requester's name and
// skills and the team's name and creator are snapshotted on the request.
func (s *JoinRequestService) Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateJoinRequestRequest) (*models.JoinRequest, error) {
	teamID, err := primitive.ObjectIDFromHex(req.TeamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.ProfileCompleted {
		return nil, apperrors.ErrProfileIncomplete
	}
	if user.Intent != models.IntentJoin {
		return nil, apperrors.ErrWrongIntent
	}
	if user.CurrentTeam != nil {
		return nil, apperrors.ErrAlreadyOnTeam
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.State != models.TeamStateOpen {
		return nil, apperrors.ErrTeamClosed
	}
	if !team.HasRoom() {
		return nil, apperrors.ErrTeamFull
	}

	pending, err := s.requestRepo.CountPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending >= models.MaxPendingRequests {
		return nil, apperrors.ErrTooManyPendingRequests
	}

	if _, err := s.requestRepo.FindPendingByTeamAndUser(ctx, teamID, userID); err == nil {
		return nil, apperrors.ErrDuplicateRequest
	} else if !errors.Is(err, apperrors.ErrRequestNotFound) {
		return nil, err
	}

	request := &models.JoinRequest{
		TeamID:        teamID,
		TeamName:      team.Name,
		TeamCreatorID: team.CreatorID,
		UserID:        userID,
		UserName:      user.DisplayName,
		UserSkills:    user.PrimarySkills,
		Note:          req.Note,
	}

	// The partial unique index backstops a concurrent duplicate.
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// ListForTeam returns a team's pending requests, newest first. Creator-only.
func (s *JoinRequestService) ListForTeam(ctx context.Context, teamID, actorID primitive.ObjectID) (*models.JoinRequestListResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatorID != actorID {
		return nil, apperrors.ErrNotTeamCreator
	}

	requests, err := s.requestRepo.FindByTeamID(ctx, teamID, models.RequestStatusPending)
	if err != nil {
		return nil, err
	}

	return &models.JoinRequestListResponse{Items: requests}, nil
}

// ListMine returns all of the acting user's requests, newest first.
func (s *JoinRequestService) ListMine(ctx context.Context, userID primitive.ObjectID) (*models.JoinRequestListResponse, error) {
	requests, err := s.requestRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.JoinRequestListResponse{Items: requests}, nil
}

// Accept adds the requester to the team and resolves the request in one
// transaction. On any guard failure the transaction aborts, so the request
// stays pending and the membership is untouched.
func (s *JoinRequestService) Accept(ctx context.Context, requestID, actorID primitive.ObjectID) error {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// The live team decides authorization; creators can change.
		team, err := s.teamRepo.FindByID(ctx, request.TeamID)
		if err != nil {
			return err
		}
		if team.CreatorID != actorID {
			return apperrors.ErrNotTeamCreator
		}
		if team.State != models.TeamStateOpen {
			return apperrors.ErrTeamClosed
		}

		if err := s.members.AddMemberInTx(ctx, request.TeamID, request.UserID); err != nil {
			return err
		}

		return s.requestRepo.UpdateStatus(ctx, requestID, models.RequestStatusPending, models.RequestStatusAccepted)
	})
}

// Reject resolves a pending request without touching membership. Like Accept
// it is a creator action on an OPEN team; rejecting an already-resolved
// request fails and changes nothing.
func (s *JoinRequestService) Reject(ctx context.Context, requestID, actorID primitive.ObjectID) error {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}

	team, err := s.teamRepo.FindByID(ctx, request.TeamID)
	if err != nil {
		return err
	}
	if team.CreatorID != actorID {
		return apperrors.ErrNotTeamCreator
	}
	if team.State != models.TeamStateOpen {
		return apperrors.ErrTeamClosed
	}

	return s.requestRepo.UpdateStatus(ctx, requestID, models.RequestStatusPending, models.RequestStatusRejected)
}
