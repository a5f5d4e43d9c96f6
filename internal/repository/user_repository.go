// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "collabase/internal/errors"
	"collabase/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindFreeAgents(ctx context.Context) ([]models.User, error)
	CompleteOnboarding(ctx context.Context, id primitive.ObjectID, req *models.OnboardingRequest) (*models.User, error)
	SetCurrentTeam(ctx context.Context, id, teamID primitive.ObjectID) error
	ClearCurrentTeam(ctx context.Context, ids []primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	// Set timestamps
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.PrimarySkills == nil {
		user.PrimarySkills = []string{}
	}
	if user.SecondarySkills == nil {
		user.SecondarySkills = []string{}
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// The unique email index is the backstop for concurrent registrations
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByIDs returns the users with the given IDs, in no particular order.
func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// FindFreeAgents returns onboarded join-intent users who are not on a team.
func (r *userRepository) FindFreeAgents(ctx context.Context) ([]models.User, error) {
	filter := bson.M{
		"profileCompleted": true,
		"intent":           models.IntentJoin,
		"currentTeam":      bson.M{"$exists": false},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// CompleteOnboarding fills in the profile fields and marks the profile
// completed. The caller enforces that onboarding happens only once.
func (r *userRepository) CompleteOnboarding(ctx context.Context, id primitive.ObjectID, req *models.OnboardingRequest) (*models.User, error) {
	secondary := req.SecondarySkills
	if secondary == nil {
		secondary = []string{}
	}

	updateDoc := bson.M{
		"profileCompleted": true,
		"intent":           req.Intent,
		"primarySkills":    req.PrimarySkills,
		"secondarySkills":  secondary,
		"role":             req.Role,
		"goal":             req.Goal,
		"timeAvailability": req.TimeAvailability,
		"updatedAt":        time.Now(),
	}
	if req.ExternalLinks != nil {
		updateDoc["externalLinks"] = req.ExternalLinks
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

// SetCurrentTeam points the user at a team.
func (r *userRepository) SetCurrentTeam(ctx context.Context, id, teamID primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"currentTeam": teamID,
			"updatedAt":   time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ClearCurrentTeam unsets currentTeam for all the given users.
func (r *userRepository) ClearCurrentTeam(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}

	update := bson.M{
		"$unset": bson.M{"currentTeam": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}

	_, err := r.collection.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, update)
	return err
}
