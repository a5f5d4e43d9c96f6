package main

import (
	"context"
	"log"
	"time"

	"collabase/internal/config"
	"collabase/internal/database"
	"collabase/internal/models"
	"collabase/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	creators, agents := seedUsers(ctx, mongoDB.Database)
	teamIDs := seedTeams(ctx, mongoDB.Database, creators)
	seedJoinRequests(ctx, mongoDB.Database, teamIDs, agents)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) ([]models.User, []models.User) {
	collection := db.Collection("users")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password, _ := auth.HashPassword("password123")
	now := time.Now()

	creators := []models.User{
		{
			ID:               primitive.NewObjectID(),
			Email:            "alice@example.com",
			Password:         password,
			DisplayName:      "Alice Johnson",
			ProfileCompleted: true,
			Intent:           models.IntentCreate,
			PrimarySkills:    []string{"Backend", "Databases"},
			SecondarySkills:  []string{"DevOps"},
			Role:             "Developer",
			Goal:             models.GoalWin,
			TimeAvailability: models.AvailabilityFullTime,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               primitive.NewObjectID(),
			Email:            "bob@example.com",
			Password:         password,
			DisplayName:      "Bob Smith",
			ProfileCompleted: true,
			Intent:           models.IntentCreate,
			PrimarySkills:    []string{"Product Management"},
			SecondarySkills:  []string{"Pitching"},
			Role:             "Product Manager",
			Goal:             models.GoalLearn,
			TimeAvailability: models.AvailabilityPartial,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}

	agents := []models.User{
		{
			ID:               primitive.NewObjectID(),
			Email:            "carol@example.com",
			Password:         password,
			DisplayName:      "Carol Diaz",
			ProfileCompleted: true,
			Intent:           models.IntentJoin,
			PrimarySkills:    []string{"Frontend", "UI/UX Design"},
			Role:             "Designer",
			Goal:             models.GoalWin,
			TimeAvailability: models.AvailabilityFullTime,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               primitive.NewObjectID(),
			Email:            "dave@example.com",
			Password:         password,
			DisplayName:      "Dave Kim",
			ProfileCompleted: true,
			Intent:           models.IntentJoin,
			PrimarySkills:    []string{"ML/AI", "Data Science"},
			SecondarySkills:  []string{"Backend"},
			Role:             "Data Scientist",
			Goal:             models.GoalBuild,
			TimeAvailability: models.AvailabilityFullTime,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:          primitive.NewObjectID(),
			Email:       "erin@example.com",
			Password:    password,
			DisplayName: "Erin Walsh",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	docs := make([]interface{}, 0, len(creators)+len(agents))
	for _, u := range creators {
		docs = append(docs, u)
	}
	for _, u := range agents {
		docs = append(docs, u)
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users", len(result.InsertedIDs))

	return creators, agents
}

func seedTeams(ctx context.Context, db *mongo.Database, creators []models.User) []primitive.ObjectID {
	collection := db.Collection("teams")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear teams: %v", err)
	}

	now := time.Now()

	teams := []models.Team{
		{
			ID:             primitive.NewObjectID(),
			Name:           "Pixel Pirates",
			CreatorID:      creators[0].ID,
			CreatorName:    creators[0].DisplayName,
			Members:        []primitive.ObjectID{creators[0].ID},
			SkillsNeeded:   []string{"Frontend", "UI/UX Design", "ML/AI"},
			Goal:           models.GoalWin,
			TimeCommitment: models.AvailabilityFullTime,
			State:          models.TeamStateOpen,
			CreatedAt:      now.Add(-24 * time.Hour),
			UpdatedAt:      now.Add(-24 * time.Hour),
		},
		{
			ID:             primitive.NewObjectID(),
			Name:           "Side Quest",
			CreatorID:      creators[1].ID,
			CreatorName:    creators[1].DisplayName,
			Members:        []primitive.ObjectID{creators[1].ID},
			SkillsNeeded:   []string{"Backend", "Mobile"},
			Goal:           models.GoalLearn,
			TimeCommitment: models.AvailabilityPartial,
			State:          models.TeamStateOpen,
			CreatedAt:      now.Add(-6 * time.Hour),
			UpdatedAt:      now.Add(-6 * time.Hour),
		},
	}

	docs := make([]interface{}, 0, len(teams))
	teamIDs := make([]primitive.ObjectID, 0, len(teams))
	for _, team := range teams {
		docs = append(docs, team)
		teamIDs = append(teamIDs, team.ID)
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed teams: %v", err)
	}
	log.Printf("Seeded %d teams", len(result.InsertedIDs))

	// Point each creator's currentTeam at their team
	users := db.Collection("users")
	for i, team := range teams {
		if _, err := users.UpdateByID(ctx, creators[i].ID, bson.M{"$set": bson.M{"currentTeam": team.ID}}); err != nil {
			log.Fatalf("Failed to set current team: %v", err)
		}
	}

	return teamIDs
}

func seedJoinRequests(ctx context.Context, db *mongo.Database, teamIDs []primitive.ObjectID, agents []models.User) {
	collection := db.Collection("join_requests")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear join requests: %v", err)
	}

	teams := db.Collection("teams")
	var pixelPirates models.Team
	if err := teams.FindOne(ctx, bson.M{"_id": teamIDs[0]}).Decode(&pixelPirates); err != nil {
		log.Fatalf("Failed to load team: %v", err)
	}

	request := models.JoinRequest{
		TeamID:        pixelPirates.ID,
		TeamName:      pixelPirates.Name,
		TeamCreatorID: pixelPirates.CreatorID,
		UserID:        agents[0].ID,
		UserName:      agents[0].DisplayName,
		UserSkills:    agents[0].PrimarySkills,
		Note:          "Designer with frontend chops, looking to win this one",
		Status:        models.RequestStatusPending,
		CreatedAt:     time.Now(),
	}

	if _, err := collection.InsertOne(ctx, request); err != nil {
		log.Fatalf("Failed to seed join request: %v", err)
	}
	log.Println("Seeded 1 join request")
}
