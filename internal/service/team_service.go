package service

import (
	"context"
	"log"

	apperrors "collabase/internal/errors"
	"collabase/internal/lifecycle"
	"collabase/internal/matching"
	"collabase/internal/models"
	"collabase/internal/queue"
	"collabase/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamService handles team business logic. Every membership and state
// mutation runs inside a transaction so the team document and the member
// documents never disagree.
type TeamService struct {
	teamRepo     repository.TeamRepository
	userRepo     repository.UserRepository
	tx           TxRunner
	cleanupQueue queue.Queue
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository, tx TxRunner, cleanupQueue queue.Queue) *TeamService {
	return &TeamService{
		teamRepo:     teamRepo,
		userRepo:     userRepo,
		tx:           tx,
		cleanupQueue: cleanupQueue,
	}
}

// CreateTeam creates a team with the acting user as creator and sole member.
// Teams are born OPEN.
func (s *TeamService) CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.ProfileCompleted {
		return nil, apperrors.ErrProfileIncomplete
	}
	if user.Intent != models.IntentCreate {
		return nil, apperrors.ErrWrongIntent
	}
	if user.CurrentTeam != nil {
		return nil, apperrors.ErrAlreadyOnTeam
	}

	team := &models.Team{
		Name:           req.Name,
		CreatorID:      userID,
		CreatorName:    user.DisplayName,
		Members:        []primitive.ObjectID{userID},
		SkillsNeeded:   req.SkillsNeeded,
		Goal:           req.Goal,
		TimeCommitment: req.TimeCommitment,
		State:          models.TeamStateOpen,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.teamRepo.Create(ctx, team); err != nil {
			return err
		}
		return s.userRepo.SetCurrentTeam(ctx, userID, team.ID)
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeam returns a team with expanded member profiles and skill analysis.
func (s *TeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.TeamDetail, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members, err := s.userRepo.FindByIDs(ctx, team.Members)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(members))
	memberSkills := make([][]string, 0, len(members))
	for i := range members {
		summaries = append(summaries, members[i].Summary())
		// Only primary skills count toward coverage; coverage measures
		// committed capability, not what a member could back up on.
		memberSkills = append(memberSkills, members[i].PrimarySkills)
	}

	return &models.TeamDetail{
		Team:          *team,
		MemberDetails: summaries,
		SkillCoverage: matching.SkillCoverage(team.SkillsNeeded, memberSkills),
		MissingSkills: matching.MissingSkills(team.SkillsNeeded, memberSkills),
	}, nil
}

// AddMemberInTx adds a user to a team. It re-reads the user inside the
// caller's transaction so a concurrent accept on another team loses. The
// repository filter re-checks state and capacity.
func (s *TeamService) AddMemberInTx(ctx context.Context, teamID, userID primitive.ObjectID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.CurrentTeam != nil {
		return apperrors.ErrAlreadyOnTeam
	}

	if err := s.teamRepo.AddMember(ctx, teamID, userID); err != nil {
		return err
	}

	return s.userRepo.SetCurrentTeam(ctx, userID, teamID)
}

// RemoveMember lets the creator remove another member while the team is
// OPEN or FINALIZED.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, actorID, targetID primitive.ObjectID) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.FindByID(ctx, teamID)
		if err != nil {
			return err
		}

		if team.CreatorID != actorID {
			return apperrors.ErrNotTeamCreator
		}
		if targetID == team.CreatorID {
			return apperrors.ErrCannotRemoveCreator
		}
		if !lifecycle.CanManageMembers(team, actorID.Hex()) {
			return apperrors.ErrWrongTeamState
		}

		if err := s.teamRepo.RemoveMember(ctx, teamID, targetID); err != nil {
			return err
		}
		return s.userRepo.ClearCurrentTeam(ctx, []primitive.ObjectID{targetID})
	})
}

// LeaveTeam removes the acting user from their team. A leaving creator must
// promote another member in the same transaction; a sole-member creator must
// delete the team instead.
func (s *TeamService) LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID, req *models.LeaveTeamRequest) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.FindByID(ctx, teamID)
		if err != nil {
			return err
		}

		if !team.IsMember(userID) {
			return apperrors.ErrNotTeamMember
		}

		if team.CreatorID == userID {
			if len(team.Members) == 1 {
				return apperrors.ErrNoOtherMembers
			}
			if req == nil || req.PromotedCreatorID == "" {
				return apperrors.ErrMustPromoteFirst
			}

			promotedID, err := primitive.ObjectIDFromHex(req.PromotedCreatorID)
			if err != nil || promotedID == userID || !team.IsMember(promotedID) {
				return apperrors.ErrPromotedNotMember
			}

			promoted, err := s.userRepo.FindByID(ctx, promotedID)
			if err != nil {
				return err
			}

			if err := s.teamRepo.SetCreator(ctx, teamID, promotedID, promoted.DisplayName); err != nil {
				return err
			}
		}

		if err := s.teamRepo.RemoveMember(ctx, teamID, userID); err != nil {
			return err
		}
		return s.userRepo.ClearCurrentTeam(ctx, []primitive.ObjectID{userID})
	})
}

// DeleteTeam deletes a DRAFT or OPEN team and frees its members. Pending
// requests and invites for the team are purged by a queued cleanup job.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID, userID primitive.ObjectID) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.FindByID(ctx, teamID)
		if err != nil {
			return err
		}

		if team.CreatorID != userID {
			return apperrors.ErrNotTeamCreator
		}
		if !lifecycle.CanDelete(team, userID.Hex()) {
			return apperrors.ErrWrongTeamState
		}

		if err := s.userRepo.ClearCurrentTeam(ctx, team.Members); err != nil {
			return err
		}
		return s.teamRepo.Delete(ctx, teamID)
	})
	if err != nil {
		return err
	}

	// Best-effort purge; a full queue only delays it.
	if err := s.cleanupQueue.Enqueue(queue.CleanupJob{
		Kind:   queue.JobPurgeTeamArtifacts,
		TeamID: teamID,
	}); err != nil {
		log.Printf("Failed to enqueue purge for team %s: %v", teamID.Hex(), err)
	}

	return nil
}

// FinalizeTeam moves an OPEN team with 3 to 5 members to FINALIZED.
func (s *TeamService) FinalizeTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Team, error) {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.FindByID(ctx, teamID)
		if err != nil {
			return err
		}

		if team.CreatorID != userID {
			return apperrors.ErrNotTeamCreator
		}
		if team.State != models.TeamStateOpen {
			return apperrors.ErrWrongTeamState
		}
		if len(team.Members) < models.MinFinalizeSize || len(team.Members) > models.MaxTeamSize {
			return apperrors.ErrTeamSizeOutOfRange
		}

		return s.teamRepo.SetState(ctx, teamID, models.TeamStateOpen, models.TeamStateFinalized)
	})
	if err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, teamID)
}

// UpdateLinks sets the team chat links. Creator-only; LOCKED teams are
// read-only.
func (s *TeamService) UpdateLinks(ctx context.Context, teamID, userID primitive.ObjectID, req *models.UpdateTeamLinksRequest) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.CreatorID != userID {
		return nil, apperrors.ErrNotTeamCreator
	}
	if team.State == models.TeamStateLocked {
		return nil, apperrors.ErrTeamLocked
	}

	if err := s.teamRepo.UpdateLinks(ctx, teamID, req.WhatsappLink, req.DiscordLink); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, teamID)
}
