package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team invite status constants.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

// TeamInvite represents a creator's invitation of a user to a team. Names are
// snapshots taken at creation time.
type TeamInvite struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID          primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	TeamName        string             `json:"teamName" bson:"teamName" example:"Pixel Pirates"`
	InvitedUserID   primitive.ObjectID `json:"invitedUserId" bson:"invitedUserId" example:"507f1f77bcf86cd799439013"`
	InvitedUserName string             `json:"invitedUserName" bson:"invitedUserName" example:"Jane Roe"`
	InvitedBy       primitive.ObjectID `json:"invitedBy" bson:"invitedBy" example:"507f1f77bcf86cd799439014"`
	InvitedByName   string             `json:"invitedByName" bson:"invitedByName" example:"John Doe"`
	Status          string             `json:"status" bson:"status" example:"pending"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// CreateInviteRequest is the payload for inviting a user to a team.
type CreateInviteRequest struct {
	UserID string `json:"userId" binding:"required" example:"507f1f77bcf86cd799439013"`
}

// InviteListResponse is the response for listing team invites.
type InviteListResponse struct {
	Items []TeamInvite `json:"items"`
}

// AcceptInviteResponse is the response for accepting an invite.
type AcceptInviteResponse struct {
	Message string `json:"message" example:"invite accepted"`
	TeamID  string `json:"teamId" example:"507f1f77bcf86cd799439012"`
}
