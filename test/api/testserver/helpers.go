//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"collabase/internal/models"
	"collabase/pkg/response"
	"collabase/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the auth response data.
func (ah *AuthHelper) RegisterUser(t *testing.T, displayName, email, password string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		DisplayName: displayName,
		Email:       email,
		Password:    password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetAccessToken logs in and returns just the access token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return token
}

// CreateAuthenticatedUser creates a user and returns the user data and access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, displayName, email, password string) (userData map[string]interface{}, accessToken string) {
	t.Helper()

	authData := ah.RegisterUser(t, displayName, email, password)

	accessToken, ok := authData["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	userData, ok = authData["user"].(map[string]interface{})
	require.True(t, ok, "user should be a map")

	return userData, accessToken
}

// OnboardUser completes onboarding for the authenticated user with sensible
// profile defaults for the given intent.
func (ah *AuthHelper) OnboardUser(t *testing.T, token, intent string) map[string]interface{} {
	t.Helper()

	req := models.OnboardingRequest{
		Intent:           intent,
		PrimarySkills:    []string{"Backend", "Frontend"},
		Role:             "Developer",
		Goal:             models.GoalWin,
		TimeAvailability: models.AvailabilityFullTime,
	}

	w := testutil.MakeAuthRequest(t, ah.server.Router, http.MethodPost, "/api/v1/users/me/onboarding", token, req)
	require.Equal(t, http.StatusOK, w.Code, "onboarding should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "onboarding response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// CreateOnboardedUser registers a user and completes onboarding with the
// given intent. Returns the user data and access token.
func (ah *AuthHelper) CreateOnboardedUser(t *testing.T, displayName, email, intent string) (userData map[string]interface{}, accessToken string) {
	t.Helper()

	_, accessToken = ah.CreateAuthenticatedUser(t, displayName, email, "password123")
	userData = ah.OnboardUser(t, accessToken, intent)

	return userData, accessToken
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// TeamHelper provides team-related helpers for API tests.
type TeamHelper struct {
	server *TestServer
}

// NewTeamHelper creates a new team helper.
func NewTeamHelper(server *TestServer) *TeamHelper {
	return &TeamHelper{server: server}
}

// CreateTeam creates a new team via the API and returns the team data. The
// caller must hold a token for an onboarded create-intent user.
func (th *TeamHelper) CreateTeam(t *testing.T, token, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateTeamRequest{
		Name:           name,
		SkillsNeeded:   []string{"Backend", "Frontend", "UI/UX Design"},
		Goal:           models.GoalWin,
		TimeCommitment: models.AvailabilityFullTime,
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create team should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create team response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedTeam directly inserts a team into the database (bypasses API).
func (th *TeamHelper) SeedTeam(t *testing.T, team *models.Team) *models.Team {
	t.Helper()
	ctx := context.Background()

	err := th.server.TeamRepo.Create(ctx, team)
	require.NoError(t, err, "failed to seed team")

	return team
}

// JoinRequestHelper provides join-request helpers for API tests.
type JoinRequestHelper struct {
	server *TestServer
}

// NewJoinRequestHelper creates a new join request helper.
func NewJoinRequestHelper(server *TestServer) *JoinRequestHelper {
	return &JoinRequestHelper{server: server}
}

// CreateJoinRequest creates a join request via the API and returns the
// response data.
func (jh *JoinRequestHelper) CreateJoinRequest(t *testing.T, token, teamID, note string) map[string]interface{} {
	t.Helper()

	req := models.CreateJoinRequestRequest{
		TeamID: teamID,
		Note:   note,
	}

	w := testutil.MakeAuthRequest(t, jh.server.Router, http.MethodPost, "/api/v1/join-requests", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create join request should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create join request response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedJoinRequest directly inserts a join request into the database.
func (jh *JoinRequestHelper) SeedJoinRequest(t *testing.T, request *models.JoinRequest) *models.JoinRequest {
	t.Helper()
	ctx := context.Background()

	err := jh.server.JoinRequestRepo.Create(ctx, request)
	require.NoError(t, err, "failed to seed join request")

	return request
}

// InviteHelper provides invite-related helpers for API tests.
type InviteHelper struct {
	server *TestServer
}

// NewInviteHelper creates a new invite helper.
func NewInviteHelper(server *TestServer) *InviteHelper {
	return &InviteHelper{server: server}
}

// CreateInvite creates an invite via the API and returns the response data.
// The token must belong to the team creator.
func (ih *InviteHelper) CreateInvite(t *testing.T, token, teamID, userID string) map[string]interface{} {
	t.Helper()

	req := models.CreateInviteRequest{
		UserID: userID,
	}

	w := testutil.MakeAuthRequest(t, ih.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/invites", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create invite should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create invite response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedInvite directly inserts an invite into the database (bypasses API).
func (ih *InviteHelper) SeedInvite(t *testing.T, invite *models.TeamInvite) *models.TeamInvite {
	t.Helper()
	ctx := context.Background()

	err := ih.server.InviteRepo.Create(ctx, invite)
	require.NoError(t, err, "failed to seed invite")

	return invite
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct ID fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	// Try direct id field first
	if id, ok := data["id"].(string); ok {
		return id
	}

	// Try nested user object (for auth responses)
	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
