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

// TeamInviteRepository defines the interface for team invite data operations.
type TeamInviteRepository interface {
	Create(ctx context.Context, invite *models.TeamInvite) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvite, error)
	FindPendingByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamInvite, error)
	FindPendingByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.TeamInvite, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamInvite, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to string) error
	DeclineAllPendingForUserExcept(ctx context.Context, userID, exceptID primitive.ObjectID) (int64, error)
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) (int64, error)
}

// teamInviteRepository implements TeamInviteRepository using MongoDB.
type teamInviteRepository struct {
	collection *mongo.Collection
}

// NewTeamInviteRepository creates a new TeamInviteRepository.
func NewTeamInviteRepository(db *mongo.Database) TeamInviteRepository {
	return &teamInviteRepository{
		collection: db.Collection("team_invites"),
	}
}

// Create inserts a new team invite.
func (r *teamInviteRepository) Create(ctx context.Context, invite *models.TeamInvite) error {
	invite.ID = primitive.NewObjectID()
	invite.Status = models.InviteStatusPending
	invite.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, invite)
	return err
}

// FindByID retrieves a team invite by ID.
func (r *teamInviteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvite, error) {
	var invite models.TeamInvite
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invite)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, err
	}

	return &invite, nil
}

// FindPendingByTeamAndUser returns the pending invite for a (team, user)
// pair, or ErrInviteNotFound when there is none.
func (r *teamInviteRepository) FindPendingByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamInvite, error) {
	filter := bson.M{
		"teamId":        teamID,
		"invitedUserId": userID,
		"status":        models.InviteStatusPending,
	}

	var invite models.TeamInvite
	err := r.collection.FindOne(ctx, filter).Decode(&invite)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, err
	}

	return &invite, nil
}

// FindPendingByUserID returns a user's pending invites, newest first.
func (r *teamInviteRepository) FindPendingByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.TeamInvite, error) {
	filter := bson.M{
		"invitedUserId": userID,
		"status":        models.InviteStatusPending,
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invites []models.TeamInvite
	if err := cursor.All(ctx, &invites); err != nil {
		return nil, err
	}

	if invites == nil {
		invites = []models.TeamInvite{}
	}

	return invites, nil
}

// FindByTeamID returns all invites sent by a team, newest first.
func (r *teamInviteRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamInvite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invites []models.TeamInvite
	if err := cursor.All(ctx, &invites); err != nil {
		return nil, err
	}

	if invites == nil {
		invites = []models.TeamInvite{}
	}

	return invites, nil
}

// UpdateStatus moves an invite from one status to another. The filter pins
// the expected current status so a resolved invite cannot be resolved twice.
func (r *teamInviteRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to string) error {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrInviteResolved
	}

	return nil
}

// DeclineAllPendingForUserExcept declines a user's other pending invites
// after one is accepted.
func (r *teamInviteRepository) DeclineAllPendingForUserExcept(ctx context.Context, userID, exceptID primitive.ObjectID) (int64, error) {
	filter := bson.M{
		"invitedUserId": userID,
		"status":        models.InviteStatusPending,
		"_id":           bson.M{"$ne": exceptID},
	}
	update := bson.M{"$set": bson.M{"status": models.InviteStatusDeclined}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

// DeleteAllByTeamID removes every invite sent by a team.
func (r *teamInviteRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
