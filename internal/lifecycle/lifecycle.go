// Package lifecycle implements the team state machine and its pure guards.
package lifecycle

import "collabase/internal/models"

// transitions lists the allowed state changes. LOCKED is terminal and no API
// operation produces it.
var transitions = map[string][]string{
	models.TeamStateDraft:     {models.TeamStateOpen},
	models.TeamStateOpen:      {models.TeamStateFinalized},
	models.TeamStateFinalized: {models.TeamStateLocked},
	models.TeamStateLocked:    {},
}

// CanTransition reports whether a team may move from one state to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanDelete reports whether the acting user may delete the team.
func CanDelete(team *models.Team, userID string) bool {
	return team.CreatorID.Hex() == userID &&
		(team.State == models.TeamStateDraft || team.State == models.TeamStateOpen)
}

// CanFinalize reports whether the acting user may finalize the team.
func CanFinalize(team *models.Team, userID string) bool {
	return team.CreatorID.Hex() == userID &&
		team.State == models.TeamStateOpen &&
		len(team.Members) >= models.MinFinalizeSize &&
		len(team.Members) <= models.MaxTeamSize
}

// CanManageMembers reports whether the acting user may add or remove members.
func CanManageMembers(team *models.Team, userID string) bool {
	return team.CreatorID.Hex() == userID &&
		(team.State == models.TeamStateOpen || team.State == models.TeamStateFinalized)
}

// CanJoin reports whether a user with no pending request may ask to join.
func CanJoin(team *models.Team, hasPendingRequest bool) bool {
	return !hasPendingRequest &&
		team.State == models.TeamStateOpen &&
		len(team.Members) < models.MaxTeamSize
}
