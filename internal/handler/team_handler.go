package handler

import (
	"collabase/internal/models"
	"collabase/internal/service"
	"collabase/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service service.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam godoc
// @Summary      Create a new team
// @Description  Create a team. The authenticated user becomes the creator and first member; the team opens immediately.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTeamRequest  true  "Team details"
// @Success      201   {object}  response.Response{data=models.Team}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, team)
}

// GetTeam godoc
// @Summary      Get team details
// @Description  Retrieve a team with expanded member profiles and skill coverage
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.TeamDetail}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	detail, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, detail)
}

// RemoveMember godoc
// @Summary      Remove a team member
// @Description  Creator removes a member. Not allowed on the creator or on a locked team.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        userId  path      string  true  "Member's user ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	targetID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), teamID, userID, targetID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "member removed"})
}

// LeaveTeam godoc
// @Summary      Leave a team
// @Description  Leave the team. A creator with remaining members must promote a successor in the same call.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                   true   "Team ID"
// @Param        body    body      models.LeaveTeamRequest  false  "Successor when the creator leaves"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/leave [post]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	var req models.LeaveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.LeaveTeam(c.Request.Context(), teamID, userID, &req); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "left the team"})
}

// DeleteTeam godoc
// @Summary      Delete a team
// @Description  Creator deletes the team while it is still open. Pending requests and invites for the team are purged.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), teamID, userID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "team deleted"})
}

// FinalizeTeam godoc
// @Summary      Finalize a team
// @Description  Creator closes the roster. Requires 3 to 5 members; the team stops appearing in the feed.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/finalize [post]
func (h *TeamHandler) FinalizeTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	team, err := h.service.FinalizeTeam(c.Request.Context(), teamID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, team)
}

// UpdateLinks godoc
// @Summary      Update team chat links
// @Description  Creator sets the WhatsApp or Discord link. Not allowed once the team is locked.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                         true  "Team ID"
// @Param        body    body      models.UpdateTeamLinksRequest  true  "Chat links"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/links [put]
func (h *TeamHandler) UpdateLinks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	var req models.UpdateTeamLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.UpdateLinks(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, team)
}
