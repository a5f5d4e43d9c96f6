package handler

import (
	"collabase/internal/models"
	"collabase/internal/service"
	"collabase/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamInviteHandler handles HTTP requests for team invite operations.
type TeamInviteHandler struct {
	service service.TeamInviteServicer
}

// NewTeamInviteHandler creates a new TeamInviteHandler.
func NewTeamInviteHandler(service service.TeamInviteServicer) *TeamInviteHandler {
	return &TeamInviteHandler{service: service}
}

// Create godoc
// @Summary      Invite a user to a team
// @Description  Creator invites a free agent with join intent. One pending invite per team and user.
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                     true  "Team ID"
// @Param        body    body      models.CreateInviteRequest true  "User to invite"
// @Success      201     {object}  response.Response{data=models.TeamInvite}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invites [post]
func (h *TeamInviteHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	var req models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invite, err := h.service.Create(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, invite)
}

// ListForTeam godoc
// @Summary      List a team's invites
// @Description  Creator-only view of invites sent for the team
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.InviteListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invites [get]
func (h *TeamInviteHandler) ListForTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	result, err := h.service.ListForTeam(c.Request.Context(), teamID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// ListMine godoc
// @Summary      List my pending invites
// @Description  Pending invites addressed to the authenticated user
// @Tags         invites
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.InviteListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /invites/mine [get]
func (h *TeamInviteHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// Accept godoc
// @Summary      Accept an invite
// @Description  The invited user joins the team atomically. Their other pending invites are declined in the background.
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        inviteId  path      string  true  "Invite ID"
// @Success      200       {object}  response.Response{data=models.AcceptInviteResponse}
// @Failure      400       {object}  response.Response
// @Failure      401       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /invites/{inviteId}/accept [post]
func (h *TeamInviteHandler) Accept(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	inviteID, ok := pathID(c, "inviteId")
	if !ok {
		return
	}

	result, err := h.service.Accept(c.Request.Context(), inviteID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// Decline godoc
// @Summary      Decline an invite
// @Description  The invited user declines a pending invite
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        inviteId  path      string  true  "Invite ID"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      401       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /invites/{inviteId}/decline [post]
func (h *TeamInviteHandler) Decline(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	inviteID, ok := pathID(c, "inviteId")
	if !ok {
		return
	}

	if err := h.service.Decline(c.Request.Context(), inviteID, userID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "invite declined"})
}
