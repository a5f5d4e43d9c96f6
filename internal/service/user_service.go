package service

import (
	"context"

	apperrors "collabase/internal/errors"
	"collabase/internal/models"
	"collabase/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles user business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// CompleteOnboarding fills in the user's profile. Onboarding happens once;
// the chosen intent is immutable afterward.
func (s *UserService) CompleteOnboarding(ctx context.Context, id primitive.ObjectID, req *models.OnboardingRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.ProfileCompleted {
		return nil, apperrors.ErrProfileAlreadyCompleted
	}

	return s.userRepo.CompleteOnboarding(ctx, id, req)
}
