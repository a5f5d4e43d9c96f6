package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Join request status constants.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// MaxPendingRequests is the system-wide cap of pending join requests per user.
const MaxPendingRequests = 3

// JoinRequest represents a user's request to join a team. Names and skills
// are snapshots taken at creation time and never refreshed.
type JoinRequest struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID        primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	TeamName      string             `json:"teamName" bson:"teamName" example:"Pixel Pirates"`
	TeamCreatorID primitive.ObjectID `json:"teamCreatorId" bson:"teamCreatorId" example:"507f1f77bcf86cd799439013"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439014"`
	UserName      string             `json:"userName" bson:"userName" example:"John Doe"`
	UserSkills    []string           `json:"userSkills" bson:"userSkills"`
	Note          string             `json:"note,omitempty" bson:"note,omitempty" example:"I build backends in Go"`
	Status        string             `json:"status" bson:"status" example:"pending"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// CreateJoinRequestRequest is the payload for requesting to join a team.
type CreateJoinRequestRequest struct {
	TeamID string `json:"teamId" binding:"required" example:"507f1f77bcf86cd799439012"`
	Note   string `json:"note" binding:"omitempty,max=120" example:"I build backends in Go"`
}

// JoinRequestListResponse is the response for listing join requests.
type JoinRequestListResponse struct {
	Items []JoinRequest `json:"items"`
}
