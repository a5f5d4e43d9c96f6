package service

import (
	"context"
	"fmt"
	"log"

	"collabase/internal/queue"
	"collabase/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CleanupService performs the best-effort follow-up writes the transactional
// paths leave behind: declining sibling invites after an accept and purging
// requests and invites after a team delete.
type CleanupService struct {
	inviteRepo  repository.TeamInviteRepository
	requestRepo repository.JoinRequestRepository
}

// NewCleanupService creates a new CleanupService.
func NewCleanupService(inviteRepo repository.TeamInviteRepository, requestRepo repository.JoinRequestRepository) *CleanupService {
	return &CleanupService{
		inviteRepo:  inviteRepo,
		requestRepo: requestRepo,
	}
}

// Ensure CleanupService implements the processor's Cleaner interface
var _ queue.Cleaner = (*CleanupService)(nil)

// DeclineSiblingInvites declines every other pending invite of a user who
// just accepted one.
func (s *CleanupService) DeclineSiblingInvites(ctx context.Context, userID, acceptedInviteID primitive.ObjectID) (int64, error) {
	declined, err := s.inviteRepo.DeclineAllPendingForUserExcept(ctx, userID, acceptedInviteID)
	if err != nil {
		return 0, err
	}

	if declined > 0 {
		log.Printf("Declined %d sibling invites for user %s", declined, userID.Hex())
	}
	return declined, nil
}

// PurgeTeamArtifacts removes the join requests and invites of a deleted team.
func (s *CleanupService) PurgeTeamArtifacts(ctx context.Context, teamID primitive.ObjectID) error {
	requests, err := s.requestRepo.DeleteAllByTeamID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("failed to purge join requests: %w", err)
	}

	invites, err := s.inviteRepo.DeleteAllByTeamID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("failed to purge invites: %w", err)
	}

	log.Printf("Purged %d requests and %d invites for deleted team %s", requests, invites, teamID.Hex())
	return nil
}
