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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JoinRequestRepository defines the interface for join request data operations.
type JoinRequestRepository interface {
	Create(ctx context.Context, request *models.JoinRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.JoinRequest, error)
	FindPendingByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.JoinRequest, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID, status string) ([]models.JoinRequest, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.JoinRequest, error)
	CountPendingByUser(ctx context.Context, userID primitive.ObjectID) (int, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to string) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) (int64, error)
}

// joinRequestRepository implements JoinRequestRepository using MongoDB.
type joinRequestRepository struct {
	collection *mongo.Collection
}

// NewJoinRequestRepository creates a new JoinRequestRepository.
func NewJoinRequestRepository(db *mongo.Database) JoinRequestRepository {
	return &joinRequestRepository{
		collection: db.Collection("join_requests"),
	}
}

// Create inserts a new join request.
func (r *joinRequestRepository) Create(ctx context.Context, request *models.JoinRequest) error {
	request.ID = primitive.NewObjectID()
	request.Status = models.RequestStatusPending
	request.CreatedAt = time.Now()

	if request.UserSkills == nil {
		request.UserSkills = []string{}
	}

	_, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		// Partial unique index on pending (teamId, userId)
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateRequest
		}
		return err
	}

	return nil
}

// FindByID retrieves a join request by ID.
func (r *joinRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.JoinRequest, error) {
	var request models.JoinRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// FindPendingByTeamAndUser returns the user's pending request for a team, or
// ErrRequestNotFound when there is none.
func (r *joinRequestRepository) FindPendingByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.JoinRequest, error) {
	filter := bson.M{
		"teamId": teamID,
		"userId": userID,
		"status": models.RequestStatusPending,
	}

	var request models.JoinRequest
	err := r.collection.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// FindByTeamID returns a team's join requests, newest first. An empty status
// returns all of them.
func (r *joinRequestRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, status string) ([]models.JoinRequest, error) {
	filter := bson.M{"teamId": teamID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.JoinRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []models.JoinRequest{}
	}

	return requests, nil
}

// FindByUserID returns all of a user's join requests, newest first.
func (r *joinRequestRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.JoinRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.JoinRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []models.JoinRequest{}
	}

	return requests, nil
}

// CountPendingByUser counts the user's pending requests across all teams.
func (r *joinRequestRepository) CountPendingByUser(ctx context.Context, userID primitive.ObjectID) (int, error) {
	filter := bson.M{
		"userId": userID,
		"status": models.RequestStatusPending,
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// UpdateStatus moves a request from one status to another. The filter pins
// the expected current status so a resolved request cannot be resolved twice.
func (r *joinRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to string) error {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrRequestResolved
	}

	return nil
}

// DeleteAllByTeamID removes every join request for a team.
func (r *joinRequestRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
