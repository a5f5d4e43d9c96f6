package service

import (
	"context"
	"errors"
	"log"

	apperrors "collabase/internal/errors"
	"collabase/internal/models"
	"collabase/internal/queue"
	"collabase/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamInviteService handles team invite business logic.
type TeamInviteService struct {
	inviteRepo   repository.TeamInviteRepository
	teamRepo     repository.TeamRepository
	userRepo     repository.UserRepository
	members      MemberAdder
	tx           TxRunner
	cleanupQueue queue.Queue
}

// NewTeamInviteService creates a new TeamInviteService.
func NewTeamInviteService(inviteRepo repository.TeamInviteRepository, teamRepo repository.TeamRepository, userRepo repository.UserRepository, members MemberAdder, tx TxRunner, cleanupQueue queue.Queue) *TeamInviteService {
	return &TeamInviteService{
		inviteRepo:   inviteRepo,
		teamRepo:     teamRepo,
		userRepo:     userRepo,
		members:      members,
		tx:           tx,
		cleanupQueue: cleanupQueue,
	}
}

// Create invites a free agent to an OPEN team. Creator-only; names are
// snapshotted on the invite.
func (s *TeamInviteService) Create(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.CreatorID != actorID {
		return nil, apperrors.ErrNotTeamCreator
	}
	if team.State != models.TeamStateOpen {
		return nil, apperrors.ErrTeamClosed
	}
	if !team.HasRoom() {
		return nil, apperrors.ErrTeamFull
	}

	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !target.ProfileCompleted {
		return nil, apperrors.ErrProfileIncomplete
	}
	if target.Intent != models.IntentJoin {
		return nil, apperrors.ErrWrongIntent
	}
	if target.CurrentTeam != nil {
		return nil, apperrors.ErrAlreadyOnTeam
	}

	if _, err := s.inviteRepo.FindPendingByTeamAndUser(ctx, teamID, targetID); err == nil {
		return nil, apperrors.ErrDuplicateInvite
	} else if !errors.Is(err, apperrors.ErrInviteNotFound) {
		return nil, err
	}

	invite := &models.TeamInvite{
		TeamID:          teamID,
		TeamName:        team.Name,
		InvitedUserID:   targetID,
		InvitedUserName: target.DisplayName,
		InvitedBy:       actorID,
		InvitedByName:   team.CreatorName,
	}

	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}

	return invite, nil
}

// ListForTeam returns all invites sent by a team, newest first. Creator-only.
func (s *TeamInviteService) ListForTeam(ctx context.Context, teamID, actorID primitive.ObjectID) (*models.InviteListResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatorID != actorID {
		return nil, apperrors.ErrNotTeamCreator
	}

	invites, err := s.inviteRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &models.InviteListResponse{Items: invites}, nil
}

// ListMine returns the acting user's pending invites, newest first.
func (s *TeamInviteService) ListMine(ctx context.Context, userID primitive.ObjectID) (*models.InviteListResponse, error) {
	invites, err := s.inviteRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.InviteListResponse{Items: invites}, nil
}

// Accept joins the invited user to the team and resolves the invite in one
// transaction. The user's other pending invites are declined afterwards by a
// queued cleanup job.
func (s *TeamInviteService) Accept(ctx context.Context, inviteID, userID primitive.ObjectID) (*models.AcceptInviteResponse, error) {
	invite, err := s.inviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}

	if invite.InvitedUserID != userID {
		return nil, apperrors.ErrNotInvited
	}
	if invite.Status != models.InviteStatusPending {
		return nil, apperrors.ErrInviteResolved
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// The team may have closed or filled since the invite was sent.
		if _, err := s.teamRepo.FindByID(ctx, invite.TeamID); err != nil {
			return err
		}

		if err := s.members.AddMemberInTx(ctx, invite.TeamID, userID); err != nil {
			return err
		}

		return s.inviteRepo.UpdateStatus(ctx, inviteID, models.InviteStatusPending, models.InviteStatusAccepted)
	})
	if err != nil {
		return nil, err
	}

	// Best-effort sibling decline; the unique membership invariant does not
	// depend on it.
	if err := s.cleanupQueue.Enqueue(queue.CleanupJob{
		Kind:             queue.JobDeclineSiblingInvites,
		UserID:           userID,
		AcceptedInviteID: inviteID,
	}); err != nil {
		log.Printf("Failed to enqueue sibling decline for user %s: %v", userID.Hex(), err)
	}

	return &models.AcceptInviteResponse{
		Message: "invite accepted",
		TeamID:  invite.TeamID.Hex(),
	}, nil
}

// Decline resolves a pending invite without touching membership. Declining
// an already-resolved invite fails and changes nothing.
func (s *TeamInviteService) Decline(ctx context.Context, inviteID, userID primitive.ObjectID) error {
	invite, err := s.inviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		return err
	}

	if invite.InvitedUserID != userID {
		return apperrors.ErrNotInvited
	}

	return s.inviteRepo.UpdateStatus(ctx, inviteID, models.InviteStatusPending, models.InviteStatusDeclined)
}
