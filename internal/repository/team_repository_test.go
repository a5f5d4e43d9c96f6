package repository

import (
	"context"
	"testing"

	apperrors "collabase/internal/errors"
	"collabase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestTeam(creatorID primitive.ObjectID) *models.Team {
	return &models.Team{
		Name:           "Pixel Pirates",
		CreatorID:      creatorID,
		CreatorName:    "Alice",
		Members:        []primitive.ObjectID{creatorID},
		SkillsNeeded:   []string{"Backend", "Frontend"},
		Goal:           models.GoalWin,
		TimeCommitment: models.AvailabilityFullTime,
		State:          models.TeamStateOpen,
	}
}

func TestTeamRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		err := repo.Create(ctx, team)

		require.NoError(t, err)
		assert.False(t, team.ID.IsZero())
		assert.NotZero(t, team.CreatedAt)
	})

	t.Run("defaults state to OPEN", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		team.State = ""
		err := repo.Create(ctx, team)

		require.NoError(t, err)
		assert.Equal(t, models.TeamStateOpen, team.State)
	})
}

func TestTeamRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, team))

		found, err := repo.FindByID(ctx, team.ID)

		require.NoError(t, err)
		assert.Equal(t, team.ID, found.ID)
		assert.Equal(t, team.Name, found.Name)
		assert.Equal(t, team.CreatorID, found.CreatorID)
	})

	t.Run("returns error for non-existent team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})
}

func TestTeamRepository_FindOpenTeams(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns only OPEN teams", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		open := newTestTeam(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, open))

		finalized := newTestTeam(primitive.NewObjectID())
		finalized.Name = "Done Deal"
		finalized.State = models.TeamStateFinalized
		require.NoError(t, repo.Create(ctx, finalized))

		teams, err := repo.FindOpenTeams(ctx)

		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, open.ID, teams[0].ID)
	})

	t.Run("returns empty slice when no open teams", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		teams, err := repo.FindOpenTeams(ctx)

		require.NoError(t, err)
		assert.NotNil(t, teams)
		assert.Len(t, teams, 0)
	})
}

func TestTeamRepository_AddMember(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("adds member to open team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, team))

		newMember := primitive.NewObjectID()
		err := repo.AddMember(ctx, team.ID, newMember)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Len(t, found.Members, 2)
		assert.True(t, found.IsMember(newMember))
	})

	t.Run("rejects duplicate member", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		creatorID := primitive.NewObjectID()
		team := newTestTeam(creatorID)
		require.NoError(t, repo.Create(ctx, team))

		err := repo.AddMember(ctx, team.ID, creatorID)

		assert.Equal(t, apperrors.ErrAlreadyOnTeam, err)
	})

	t.Run("rejects member on non-open team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		team.State = models.TeamStateFinalized
		require.NoError(t, repo.Create(ctx, team))

		err := repo.AddMember(ctx, team.ID, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrTeamClosed, err)
	})

	t.Run("rejects member when team is full", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		for len(team.Members) < models.MaxTeamSize {
			team.Members = append(team.Members, primitive.NewObjectID())
		}
		require.NoError(t, repo.Create(ctx, team))

		err := repo.AddMember(ctx, team.ID, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrTeamFull, err)
	})

	t.Run("returns error for non-existent team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		err := repo.AddMember(ctx, primitive.NewObjectID(), primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})
}

func TestTeamRepository_RemoveMember(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("removes member", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		creatorID := primitive.NewObjectID()
		memberID := primitive.NewObjectID()
		team := newTestTeam(creatorID)
		team.Members = append(team.Members, memberID)
		require.NoError(t, repo.Create(ctx, team))

		err := repo.RemoveMember(ctx, team.ID, memberID)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Len(t, found.Members, 1)
		assert.False(t, found.IsMember(memberID))
	})

	t.Run("returns error when user is not a member", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, team))

		err := repo.RemoveMember(ctx, team.ID, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrNotTeamMember, err)
	})
}

func TestTeamRepository_SetState(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("transitions between states", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, team))

		err := repo.SetState(ctx, team.ID, models.TeamStateOpen, models.TeamStateFinalized)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TeamStateFinalized, found.State)
	})

	t.Run("rejects transition from wrong state", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		team.State = models.TeamStateLocked
		require.NoError(t, repo.Create(ctx, team))

		err := repo.SetState(ctx, team.ID, models.TeamStateOpen, models.TeamStateFinalized)

		assert.Equal(t, apperrors.ErrWrongTeamState, err)
	})
}

func TestTeamRepository_SetCreator(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("reassigns creator", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, team))

		successor := primitive.NewObjectID()
		err := repo.SetCreator(ctx, team.ID, successor, "Bob")

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, successor, found.CreatorID)
		assert.Equal(t, "Bob", found.CreatorName)
	})

	t.Run("returns error for non-existent team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		err := repo.SetCreator(ctx, primitive.NewObjectID(), primitive.NewObjectID(), "Nobody")

		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})
}

func TestTeamRepository_UpdateLinks(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("sets both links", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, team))

		whatsapp := "https://chat.whatsapp.com/abc"
		discord := "https://discord.gg/abc"
		err := repo.UpdateLinks(ctx, team.ID, &whatsapp, &discord)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, whatsapp, found.WhatsappLink)
		assert.Equal(t, discord, found.DiscordLink)
	})

	t.Run("nil pointer leaves link unchanged", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		team.WhatsappLink = "https://chat.whatsapp.com/keep"
		require.NoError(t, repo.Create(ctx, team))

		discord := "https://discord.gg/new"
		err := repo.UpdateLinks(ctx, team.ID, nil, &discord)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://chat.whatsapp.com/keep", found.WhatsappLink)
		assert.Equal(t, "https://discord.gg/new", found.DiscordLink)
	})
}

func TestTeamRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes existing team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := newTestTeam(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, team))

		err := repo.Delete(ctx, team.ID)

		require.NoError(t, err)

		_, err = repo.FindByID(ctx, team.ID)
		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})

	t.Run("returns error for non-existent team", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrTeamNotFound, err)
	})
}
