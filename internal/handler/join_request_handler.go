package handler

import (
	"collabase/internal/models"
	"collabase/internal/service"
	"collabase/pkg/response"

	"github.com/gin-gonic/gin"
)

// JoinRequestHandler handles HTTP requests for join request operations.
type JoinRequestHandler struct {
	service service.JoinRequestServicer
}

// NewJoinRequestHandler creates a new JoinRequestHandler.
func NewJoinRequestHandler(service service.JoinRequestServicer) *JoinRequestHandler {
	return &JoinRequestHandler{service: service}
}

// Create godoc
// @Summary      Request to join a team
// @Description  Create a pending join request for an open team. Capped at 3 pending requests per user.
// @Tags         join-requests
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateJoinRequestRequest  true  "Target team and optional note"
// @Success      201   {object}  response.Response{data=models.JoinRequest}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /join-requests [post]
func (h *JoinRequestHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, request)
}

// ListForTeam godoc
// @Summary      List a team's pending join requests
// @Description  Creator-only view of pending requests for the team
// @Tags         join-requests
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.JoinRequestListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/join-requests [get]
func (h *JoinRequestHandler) ListForTeam(c *gin.Context) {
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
// @Summary      List my join requests
// @Description  All join requests the authenticated user has made, any status
// @Tags         join-requests
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.JoinRequestListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /join-requests/mine [get]
func (h *JoinRequestHandler) ListMine(c *gin.Context) {
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
// @Summary      Accept a join request
// @Description  Creator accepts a pending request; the requester joins the team atomically.
// @Tags         join-requests
// @Accept       json
// @Produce      json
// @Param        requestId  path      string  true  "Join request ID"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Security     BearerAuth
// @Router       /join-requests/{requestId}/accept [post]
func (h *JoinRequestHandler) Accept(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	if err := h.service.Accept(c.Request.Context(), requestID, userID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "request accepted"})
}

// Reject godoc
// @Summary      Reject a join request
// @Description  Creator rejects a pending request
// @Tags         join-requests
// @Accept       json
// @Produce      json
// @Param        requestId  path      string  true  "Join request ID"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Security     BearerAuth
// @Router       /join-requests/{requestId}/reject [post]
func (h *JoinRequestHandler) Reject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	if err := h.service.Reject(c.Request.Context(), requestID, userID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "request rejected"})
}
