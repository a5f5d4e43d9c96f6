package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team lifecycle states.
const (
	TeamStateDraft     = "DRAFT"
	TeamStateOpen      = "OPEN"
	TeamStateFinalized = "FINALIZED"
	TeamStateLocked    = "LOCKED"
)

// Team size limits.
const (
	MaxTeamSize     = 5
	MinFinalizeSize = 3
)

// Team represents a hackathon team.
type Team struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name           string               `json:"name" bson:"name" example:"Pixel Pirates"`
	CreatorID      primitive.ObjectID   `json:"creatorId" bson:"creatorId" example:"507f1f77bcf86cd799439012"`
	CreatorName    string               `json:"creatorName" bson:"creatorName" example:"John Doe"`
	Members        []primitive.ObjectID `json:"members" bson:"members"`
	SkillsNeeded   []string             `json:"skillsNeeded" bson:"skillsNeeded"`
	Goal           string               `json:"goal" bson:"goal" example:"win"`
	TimeCommitment string               `json:"timeCommitment" bson:"timeCommitment" example:"full-time"`
	State          string               `json:"state" bson:"state" example:"OPEN"`
	WhatsappLink   string               `json:"whatsappLink,omitempty" bson:"whatsappLink,omitempty"`
	DiscordLink    string               `json:"discordLink,omitempty" bson:"discordLink,omitempty"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// IsMember reports whether the given user is on the team.
func (t *Team) IsMember(userID primitive.ObjectID) bool {
	for _, m := range t.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// HasRoom reports whether the team can accept another member.
func (t *Team) HasRoom() bool {
	return len(t.Members) < MaxTeamSize
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=60" example:"Pixel Pirates"`
	SkillsNeeded   []string `json:"skillsNeeded" binding:"required,min=1,dive,skill" example:"Backend"`
	Goal           string   `json:"goal" binding:"required,oneof=win learn build" example:"win"`
	TimeCommitment string   `json:"timeCommitment" binding:"required,oneof=full-time partial" example:"full-time"`
}

// UpdateTeamLinksRequest is the payload for updating a team's chat links.
type UpdateTeamLinksRequest struct {
	WhatsappLink *string `json:"whatsappLink" binding:"omitempty,url" example:"https://chat.whatsapp.com/abc"`
	DiscordLink  *string `json:"discordLink" binding:"omitempty,url" example:"https://discord.gg/abc"`
}

// LeaveTeamRequest is the payload for leaving a team. PromotedCreatorID is
// required when the leaving user is the creator and other members remain.
type LeaveTeamRequest struct {
	PromotedCreatorID string `json:"promotedCreatorId" binding:"omitempty" example:"507f1f77bcf86cd799439013"`
}

// TeamDetail is a team with expanded member profiles and skill analysis.
type TeamDetail struct {
	Team          Team          `json:"team"`
	MemberDetails []UserSummary `json:"memberDetails"`
	SkillCoverage int           `json:"skillCoverage" example:"67"`
	MissingSkills []string      `json:"missingSkills"`
}

// TeamFeedItem is a team as shown in the matchmaking feed.
type TeamFeedItem struct {
	Team         Team          `json:"team"`
	MemberCount  int           `json:"memberCount" example:"3"`
	MemberSkills []UserSummary `json:"memberSkills"`
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items []TeamFeedItem `json:"items"`
}
