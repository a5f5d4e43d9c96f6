// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Onboarding intent constants.
const (
	IntentJoin   = "join"
	IntentCreate = "create"
)

// Hackathon goal constants.
const (
	GoalWin   = "win"
	GoalLearn = "learn"
	GoalBuild = "build"
)

// Time availability constants.
const (
	AvailabilityFullTime = "full-time"
	AvailabilityPartial  = "partial"
)

// User represents a user in the system.
type User struct {
	ID               primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email            string              `json:"email" bson:"email" example:"user@example.com"`
	Password         string              `json:"-" bson:"password"` // "-" = never include in JSON response
	DisplayName      string              `json:"displayName" bson:"displayName" example:"John Doe"`
	PhotoURL         string              `json:"photoUrl,omitempty" bson:"photoUrl,omitempty" example:"https://example.com/photo.png"`
	ProfileCompleted bool                `json:"profileCompleted" bson:"profileCompleted"`
	Intent           string              `json:"intent,omitempty" bson:"intent,omitempty" example:"join"`
	PrimarySkills    []string            `json:"primarySkills" bson:"primarySkills"`
	SecondarySkills  []string            `json:"secondarySkills" bson:"secondarySkills"`
	Role             string              `json:"role,omitempty" bson:"role,omitempty" example:"Developer"`
	Goal             string              `json:"goal,omitempty" bson:"goal,omitempty" example:"win"`
	TimeAvailability string              `json:"timeAvailability,omitempty" bson:"timeAvailability,omitempty" example:"full-time"`
	ExternalLinks    *ExternalLinks      `json:"externalLinks,omitempty" bson:"externalLinks,omitempty"`
	CurrentTeam      *primitive.ObjectID `json:"currentTeam,omitempty" bson:"currentTeam,omitempty"`
	CreatedAt        time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt        time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// ExternalLinks holds a user's optional profile links.
type ExternalLinks struct {
	GitHub    string `json:"github,omitempty" bson:"github,omitempty" example:"https://github.com/johndoe"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty" example:"https://linkedin.com/in/johndoe"`
	Portfolio string `json:"portfolio,omitempty" bson:"portfolio,omitempty" example:"https://johndoe.dev"`
}

// UserSummary is a minimal user representation for embedding.
type UserSummary struct {
	ID              primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	DisplayName     string             `json:"displayName" example:"John Doe"`
	Role            string             `json:"role,omitempty" example:"Developer"`
	PrimarySkills   []string           `json:"primarySkills"`
	SecondarySkills []string           `json:"secondarySkills,omitempty"`
}

// Summary returns the embeddable representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		DisplayName:     u.DisplayName,
		Role:            u.Role,
		PrimarySkills:   u.PrimarySkills,
		SecondarySkills: u.SecondarySkills,
	}
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email" example:"user@example.com"`
	Password    string `json:"password" binding:"required,min=6" example:"secret123"`
	DisplayName string `json:"displayName" binding:"required,min=2" example:"John Doe"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// OnboardingRequest is the payload for completing onboarding. The intent is
// immutable once the profile is completed.
type OnboardingRequest struct {
	Intent           string         `json:"intent" binding:"required,oneof=join create" example:"join"`
	PrimarySkills    []string       `json:"primarySkills" binding:"required,min=1,max=3,dive,skill" example:"Frontend"`
	SecondarySkills  []string       `json:"secondarySkills" binding:"omitempty,dive,skill"`
	Role             string         `json:"role" binding:"required,role" example:"Developer"`
	Goal             string         `json:"goal" binding:"required,oneof=win learn build" example:"win"`
	TimeAvailability string         `json:"timeAvailability" binding:"required,oneof=full-time partial" example:"full-time"`
	ExternalLinks    *ExternalLinks `json:"externalLinks" binding:"omitempty"`
}
