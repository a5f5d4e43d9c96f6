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

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindOpenTeams(ctx context.Context) ([]models.Team, error)
	AddMember(ctx context.Context, teamID, userID primitive.ObjectID) error
	RemoveMember(ctx context.Context, teamID, userID primitive.ObjectID) error
	SetState(ctx context.Context, teamID primitive.ObjectID, from, to string) error
	SetCreator(ctx context.Context, teamID, creatorID primitive.ObjectID, creatorName string) error
	UpdateLinks(ctx context.Context, teamID primitive.ObjectID, whatsapp, discord *string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a new team into the database.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	team.UpdatedAt = time.Now()

	if team.State == "" {
		team.State = models.TeamStateOpen
	}

	_, err := r.collection.InsertOne(ctx, team)
	return err
}

// FindByID retrieves a team by ID.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindOpenTeams returns all OPEN teams, newest first.
func (r *teamRepository) FindOpenTeams(ctx context.Context) ([]models.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"state": models.TeamStateOpen}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, nil
}

// AddMember appends a user to the member list. The filter re-checks state and
// capacity so a stale read can never overfill the team.
func (r *teamRepository) AddMember(ctx context.Context, teamID, userID primitive.ObjectID) error {
	filter := bson.M{
		"_id":     teamID,
		"state":   models.TeamStateOpen,
		"members": bson.M{"$ne": userID},
		"$expr":   bson.M{"$lt": []interface{}{bson.M{"$size": "$members"}, models.MaxTeamSize}},
	}

	update := bson.M{
		"$push": bson.M{"members": userID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		// Re-read to report the precise reason
		team, ferr := r.FindByID(ctx, teamID)
		if ferr != nil {
			return ferr
		}
		if team.IsMember(userID) {
			return apperrors.ErrAlreadyOnTeam
		}
		if team.State != models.TeamStateOpen {
			return apperrors.ErrTeamClosed
		}
		return apperrors.ErrTeamFull
	}

	return nil
}

// RemoveMember pulls a user from the member list.
func (r *teamRepository) RemoveMember(ctx context.Context, teamID, userID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"members": userID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": teamID, "members": userID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotTeamMember
	}

	return nil
}

// SetState moves a team from one state to another. The filter includes the
// expected current state so a concurrent transition loses cleanly.
func (r *teamRepository) SetState(ctx context.Context, teamID primitive.ObjectID, from, to string) error {
	filter := bson.M{"_id": teamID, "state": from}
	update := bson.M{
		"$set": bson.M{
			"state":     to,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrWrongTeamState
	}

	return nil
}

// SetCreator reassigns the creator and its denormalized name.
func (r *teamRepository) SetCreator(ctx context.Context, teamID, creatorID primitive.ObjectID, creatorName string) error {
	update := bson.M{
		"$set": bson.M{
			"creatorId":   creatorID,
			"creatorName": creatorName,
			"updatedAt":   time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": teamID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}

// UpdateLinks sets the team chat links. Nil pointers leave a link unchanged.
func (r *teamRepository) UpdateLinks(ctx context.Context, teamID primitive.ObjectID, whatsapp, discord *string) error {
	updateDoc := bson.M{"updatedAt": time.Now()}
	if whatsapp != nil {
		updateDoc["whatsappLink"] = *whatsapp
	}
	if discord != nil {
		updateDoc["discordLink"] = *discord
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": teamID}, bson.M{"$set": updateDoc})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}

// Delete removes a team.
func (r *teamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}
