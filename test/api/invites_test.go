//go:build api

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"collabase/internal/models"
	"collabase/test/api/testserver"
	"collabase/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateInvite tests the POST /api/v1/teams/:teamId/invites endpoint.
func TestCreateInvite(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	creatorToken, _, teamID := buildTeam(t, "inv")
	targetData, _ := authHelper.CreateOnboardedUser(t, "Invite Target", "invtarget@example.com", models.IntentJoin)
	targetID := testserver.GetIDFromResponse(t, targetData)

	t.Run("success - creates pending invite with snapshots", func(t *testing.T) {
		req := models.CreateInviteRequest{UserID: targetID}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invites", creatorToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, models.InviteStatusPending, resp.Data["status"])
		assert.Equal(t, "Team inv", resp.Data["teamName"])
		assert.Equal(t, "Invite Target", resp.Data["invitedUserName"])
	})

	t.Run("error - duplicate pending invite", func(t *testing.T) {
		req := models.CreateInviteRequest{UserID: targetID}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invites", creatorToken, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("error - non-creator cannot invite", func(t *testing.T) {
		_, otherToken := authHelper.CreateOnboardedUser(t, "Not Creator", "notcreator-inv@example.com", models.IntentJoin)

		req := models.CreateInviteRequest{UserID: targetID}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invites", otherToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - target not onboarded", func(t *testing.T) {
		rawData, _ := authHelper.CreateAuthenticatedUser(t, "Raw Target", "rawtarget-inv@example.com", "password123")
		rawID := testserver.GetIDFromResponse(t, rawData)

		req := models.CreateInviteRequest{UserID: rawID}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invites", creatorToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - target has create intent", func(t *testing.T) {
		builderData, _ := authHelper.CreateOnboardedUser(t, "Builder Target", "buildertarget-inv@example.com", models.IntentCreate)
		builderID := testserver.GetIDFromResponse(t, builderData)

		req := models.CreateInviteRequest{UserID: builderID}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invites", creatorToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - target already on a team", func(t *testing.T) {
		otherCreatorToken, _, otherTeamID := buildTeam(t, "invother")
		_, takenID := joinTeam(t, otherCreatorToken, otherTeamID, "invtaken")

		req := models.CreateInviteRequest{UserID: takenID}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invites", creatorToken, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("error - unknown target user", func(t *testing.T) {
		req := models.CreateInviteRequest{UserID: "507f1f77bcf86cd799439099"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invites", creatorToken, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestListTeamInvites tests the GET /api/v1/teams/:teamId/invites endpoint.
func TestListTeamInvites(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	inviteHelper := testserver.NewInviteHelper(testServer)

	creatorToken, _, teamID := buildTeam(t, "invlist")
	targetData, targetToken := authHelper.CreateOnboardedUser(t, "Listed Target", "listedtarget@example.com", models.IntentJoin)
	inviteHelper.CreateInvite(t, creatorToken, teamID, testserver.GetIDFromResponse(t, targetData))

	t.Run("success - creator sees sent invites", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+teamID+"/invites", creatorToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok, "items should be an array")
		require.Len(t, items, 1)

		item, ok := items[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Listed Target", item["invitedUserName"])
	})

	t.Run("error - non-creator cannot list", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+teamID+"/invites", targetToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestListMyInvites tests the GET /api/v1/invites/mine endpoint.
func TestListMyInvites(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	inviteHelper := testserver.NewInviteHelper(testServer)

	creatorAToken, _, teamAID := buildTeam(t, "minea")
	creatorBToken, _, teamBID := buildTeam(t, "mineb")

	targetData, targetToken := authHelper.CreateOnboardedUser(t, "Popular Target", "populartarget@example.com", models.IntentJoin)
	targetID := testserver.GetIDFromResponse(t, targetData)
	inviteHelper.CreateInvite(t, creatorAToken, teamAID, targetID)
	inviteHelper.CreateInvite(t, creatorBToken, teamBID, targetID)

	t.Run("success - returns pending invites", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/invites/mine", targetToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok, "items should be an array")
		assert.Len(t, items, 2)
	})

	t.Run("success - empty list for user with no invites", func(t *testing.T) {
		_, otherToken := authHelper.CreateOnboardedUser(t, "Uninvited", "uninvited@example.com", models.IntentJoin)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/invites/mine", otherToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok, "items should be an array")
		assert.Empty(t, items)
	})
}

// TestAcceptInvite tests the POST /api/v1/invites/:inviteId/accept endpoint.
func TestAcceptInvite(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	inviteHelper := testserver.NewInviteHelper(testServer)

	t.Run("success - joins team and declines sibling invites", func(t *testing.T) {
		ctx := context.Background()
		testServer.StartCleanupProcessor(ctx)
		defer testServer.StopCleanupProcessor()

		creatorAToken, _, teamAID := buildTeam(t, "acca")
		creatorBToken, _, teamBID := buildTeam(t, "accb")

		targetData, targetToken := authHelper.CreateOnboardedUser(t, "Accept Target", "accepttarget@example.com", models.IntentJoin)
		targetID := testserver.GetIDFromResponse(t, targetData)

		inviteAData := inviteHelper.CreateInvite(t, creatorAToken, teamAID, targetID)
		inviteHelper.CreateInvite(t, creatorBToken, teamBID, targetID)
		inviteAID := testserver.GetIDFromResponse(t, inviteAData)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteAID+"/accept", targetToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, teamAID, resp.Data["teamId"])

		// The target is now on team A
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", targetToken, nil)
		me := testutil.ParseAPIResponse(t, w2)
		assert.Equal(t, teamAID, me.Data["currentTeam"])

		// The sibling invite from team B is declined in the background
		require.Eventually(t, func() bool {
			w3 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/invites/mine", targetToken, nil)
			mine := testutil.ParseAPIResponse(t, w3)
			items, ok := mine.Data["items"].([]interface{})
			return ok && len(items) == 0
		}, 5*time.Second, 100*time.Millisecond, "sibling invite should be declined")
	})

	t.Run("error - only the invited user can accept", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		creatorToken, _, teamID := buildTeam(t, "wrongacc")
		targetData, _ := authHelper.CreateOnboardedUser(t, "Wrong Target", "wrongtarget@example.com", models.IntentJoin)
		inviteData := inviteHelper.CreateInvite(t, creatorToken, teamID, testserver.GetIDFromResponse(t, targetData))
		inviteID := testserver.GetIDFromResponse(t, inviteData)

		_, strangerToken := authHelper.CreateOnboardedUser(t, "Stranger", "stranger-acc@example.com", models.IntentJoin)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteID+"/accept", strangerToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - invite already resolved", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		creatorToken, _, teamID := buildTeam(t, "twiceacc")
		targetData, targetToken := authHelper.CreateOnboardedUser(t, "Twice Target", "twicetarget@example.com", models.IntentJoin)
		inviteData := inviteHelper.CreateInvite(t, creatorToken, teamID, testserver.GetIDFromResponse(t, targetData))
		inviteID := testserver.GetIDFromResponse(t, inviteData)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteID+"/accept", targetToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteID+"/accept", targetToken, nil)
		assert.Equal(t, http.StatusConflict, w2.Code)
	})

	t.Run("error - invited user joined another team meanwhile", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		creatorAToken, _, teamAID := buildTeam(t, "stalea")
		creatorBToken, _, teamBID := buildTeam(t, "staleb")

		targetData, targetToken := authHelper.CreateOnboardedUser(t, "Stale Target", "staletarget@example.com", models.IntentJoin)
		targetID := testserver.GetIDFromResponse(t, targetData)

		inviteAData := inviteHelper.CreateInvite(t, creatorAToken, teamAID, targetID)
		inviteBData := inviteHelper.CreateInvite(t, creatorBToken, teamBID, targetID)
		inviteAID := testserver.GetIDFromResponse(t, inviteAData)
		inviteBID := testserver.GetIDFromResponse(t, inviteBData)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteAID+"/accept", targetToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		// The processor is not running, so the sibling invite is still pending
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteBID+"/accept", targetToken, nil)
		assert.Equal(t, http.StatusConflict, w2.Code)
	})
}

// TestDeclineInvite tests the POST /api/v1/invites/:inviteId/decline endpoint.
func TestDeclineInvite(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	inviteHelper := testserver.NewInviteHelper(testServer)

	creatorToken, _, teamID := buildTeam(t, "dec")
	targetData, targetToken := authHelper.CreateOnboardedUser(t, "Decline Target", "declinetarget@example.com", models.IntentJoin)
	inviteData := inviteHelper.CreateInvite(t, creatorToken, teamID, testserver.GetIDFromResponse(t, targetData))
	inviteID := testserver.GetIDFromResponse(t, inviteData)

	t.Run("error - only the invited user can decline", func(t *testing.T) {
		_, strangerToken := authHelper.CreateOnboardedUser(t, "Decline Stranger", "declinestranger@example.com", models.IntentJoin)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteID+"/decline", strangerToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success - declines pending invite", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteID+"/decline", targetToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		// Membership untouched
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", targetToken, nil)
		me := testutil.ParseAPIResponse(t, w2)
		assert.Nil(t, me.Data["currentTeam"])
	})

	t.Run("error - cannot accept a declined invite", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/invites/"+inviteID+"/accept", targetToken, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
