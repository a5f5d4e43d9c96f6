// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"collabase/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:              primitive.NewObjectID(),
			DisplayName:     "Test User",
			Email:           fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:        "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			PrimarySkills:   []string{},
			SecondarySkills: []string{},
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.user.DisplayName = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

// Onboarded marks the profile completed with the given intent and defaults
// for the remaining profile fields.
func (b *UserBuilder) Onboarded(intent string) *UserBuilder {
	b.user.ProfileCompleted = true
	b.user.Intent = intent
	b.user.PrimarySkills = []string{"Backend"}
	b.user.Role = "Developer"
	b.user.Goal = models.GoalWin
	b.user.TimeAvailability = models.AvailabilityFullTime
	return b
}

func (b *UserBuilder) WithPrimarySkills(skills ...string) *UserBuilder {
	b.user.PrimarySkills = skills
	return b
}

func (b *UserBuilder) WithSecondarySkills(skills ...string) *UserBuilder {
	b.user.SecondarySkills = skills
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.user.Role = role
	return b
}

func (b *UserBuilder) WithGoal(goal string) *UserBuilder {
	b.user.Goal = goal
	return b
}

func (b *UserBuilder) WithTimeAvailability(availability string) *UserBuilder {
	b.user.TimeAvailability = availability
	return b
}

func (b *UserBuilder) OnTeam(teamID primitive.ObjectID) *UserBuilder {
	b.user.CurrentTeam = &teamID
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Team Fixtures =====

// TeamBuilder provides fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a new TeamBuilder with sensible defaults. The creator is
// the sole member of an OPEN team.
func NewTeam() *TeamBuilder {
	creatorID := primitive.NewObjectID()
	return &TeamBuilder{
		team: models.Team{
			ID:             primitive.NewObjectID(),
			Name:           "Test Team",
			CreatorID:      creatorID,
			CreatorName:    "Test Creator",
			Members:        []primitive.ObjectID{creatorID},
			SkillsNeeded:   []string{"Backend", "Frontend"},
			Goal:           models.GoalWin,
			TimeCommitment: models.AvailabilityFullTime,
			State:          models.TeamStateOpen,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		},
	}
}

func (b *TeamBuilder) WithID(id primitive.ObjectID) *TeamBuilder {
	b.team.ID = id
	return b
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

// WithCreator sets the creator and puts them at the head of the member list.
func (b *TeamBuilder) WithCreator(creatorID primitive.ObjectID, creatorName string) *TeamBuilder {
	b.team.CreatorID = creatorID
	b.team.CreatorName = creatorName
	members := []primitive.ObjectID{creatorID}
	if len(b.team.Members) > 1 {
		members = append(members, b.team.Members[1:]...)
	}
	b.team.Members = members
	return b
}

func (b *TeamBuilder) WithMembers(memberIDs ...primitive.ObjectID) *TeamBuilder {
	b.team.Members = append(b.team.Members, memberIDs...)
	return b
}

func (b *TeamBuilder) WithSkillsNeeded(skills ...string) *TeamBuilder {
	b.team.SkillsNeeded = skills
	return b
}

func (b *TeamBuilder) WithGoal(goal string) *TeamBuilder {
	b.team.Goal = goal
	return b
}

func (b *TeamBuilder) WithState(state string) *TeamBuilder {
	b.team.State = state
	return b
}

func (b *TeamBuilder) Finalized() *TeamBuilder {
	b.team.State = models.TeamStateFinalized
	return b
}

func (b *TeamBuilder) Locked() *TeamBuilder {
	b.team.State = models.TeamStateLocked
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	return &b.team
}

// ===== JoinRequest Fixtures =====

// JoinRequestBuilder provides fluent API for building test join requests.
type JoinRequestBuilder struct {
	request models.JoinRequest
}

// NewJoinRequest creates a new JoinRequestBuilder with sensible defaults.
func NewJoinRequest() *JoinRequestBuilder {
	return &JoinRequestBuilder{
		request: models.JoinRequest{
			ID:            primitive.NewObjectID(),
			TeamID:        primitive.NewObjectID(),
			TeamName:      "Test Team",
			TeamCreatorID: primitive.NewObjectID(),
			UserID:        primitive.NewObjectID(),
			UserName:      "Test User",
			UserSkills:    []string{"Backend"},
			Status:        models.RequestStatusPending,
			CreatedAt:     time.Now(),
		},
	}
}

func (b *JoinRequestBuilder) WithID(id primitive.ObjectID) *JoinRequestBuilder {
	b.request.ID = id
	return b
}

func (b *JoinRequestBuilder) ForTeam(team models.Team) *JoinRequestBuilder {
	b.request.TeamID = team.ID
	b.request.TeamName = team.Name
	b.request.TeamCreatorID = team.CreatorID
	return b
}

func (b *JoinRequestBuilder) FromUser(user models.User) *JoinRequestBuilder {
	b.request.UserID = user.ID
	b.request.UserName = user.DisplayName
	b.request.UserSkills = user.PrimarySkills
	return b
}

func (b *JoinRequestBuilder) WithNote(note string) *JoinRequestBuilder {
	b.request.Note = note
	return b
}

func (b *JoinRequestBuilder) WithStatus(status string) *JoinRequestBuilder {
	b.request.Status = status
	return b
}

func (b *JoinRequestBuilder) Accepted() *JoinRequestBuilder {
	b.request.Status = models.RequestStatusAccepted
	return b
}

func (b *JoinRequestBuilder) Rejected() *JoinRequestBuilder {
	b.request.Status = models.RequestStatusRejected
	return b
}

func (b *JoinRequestBuilder) Build() models.JoinRequest {
	return b.request
}

func (b *JoinRequestBuilder) BuildPtr() *models.JoinRequest {
	return &b.request
}

// ===== TeamInvite Fixtures =====

// TeamInviteBuilder provides fluent API for building test team invites.
type TeamInviteBuilder struct {
	invite models.TeamInvite
}

// NewTeamInvite creates a new TeamInviteBuilder with sensible defaults.
func NewTeamInvite() *TeamInviteBuilder {
	return &TeamInviteBuilder{
		invite: models.TeamInvite{
			ID:              primitive.NewObjectID(),
			TeamID:          primitive.NewObjectID(),
			TeamName:        "Test Team",
			InvitedUserID:   primitive.NewObjectID(),
			InvitedUserName: "Invited User",
			InvitedBy:       primitive.NewObjectID(),
			InvitedByName:   "Test Creator",
			Status:          models.InviteStatusPending,
			CreatedAt:       time.Now(),
		},
	}
}

func (b *TeamInviteBuilder) WithID(id primitive.ObjectID) *TeamInviteBuilder {
	b.invite.ID = id
	return b
}

func (b *TeamInviteBuilder) ForTeam(team models.Team) *TeamInviteBuilder {
	b.invite.TeamID = team.ID
	b.invite.TeamName = team.Name
	b.invite.InvitedBy = team.CreatorID
	b.invite.InvitedByName = team.CreatorName
	return b
}

func (b *TeamInviteBuilder) ToUser(user models.User) *TeamInviteBuilder {
	b.invite.InvitedUserID = user.ID
	b.invite.InvitedUserName = user.DisplayName
	return b
}

func (b *TeamInviteBuilder) WithStatus(status string) *TeamInviteBuilder {
	b.invite.Status = status
	return b
}

func (b *TeamInviteBuilder) Accepted() *TeamInviteBuilder {
	b.invite.Status = models.InviteStatusAccepted
	return b
}

func (b *TeamInviteBuilder) Declined() *TeamInviteBuilder {
	b.invite.Status = models.InviteStatusDeclined
	return b
}

func (b *TeamInviteBuilder) Build() models.TeamInvite {
	return b.invite
}

func (b *TeamInviteBuilder) BuildPtr() *models.TeamInvite {
	return &b.invite
}
