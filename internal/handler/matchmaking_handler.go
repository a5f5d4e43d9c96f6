package handler

import (
	"strconv"

	"collabase/internal/service"
	"collabase/pkg/response"

	"github.com/gin-gonic/gin"
)

// MatchmakingHandler handles HTTP requests for matchmaking operations.
type MatchmakingHandler struct {
	service service.MatchmakingServicer
}

// NewMatchmakingHandler creates a new MatchmakingHandler.
func NewMatchmakingHandler(service service.MatchmakingServicer) *MatchmakingHandler {
	return &MatchmakingHandler{service: service}
}

// TeamFeed godoc
// @Summary      Browse open teams
// @Description  All open teams with member skill summaries. Served from a short-lived cache.
// @Tags         matchmaking
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.TeamListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /matchmaking/feed [get]
func (h *MatchmakingHandler) TeamFeed(c *gin.Context) {
	result, err := h.service.TeamFeed(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// TopMatches godoc
// @Summary      Get top team matches
// @Description  Open teams ranked by skill fit for the authenticated join-intent user. Zero-score teams are omitted.
// @Tags         matchmaking
// @Accept       json
// @Produce      json
// @Param        top  query     int  false  "Number of matches (default: 3)"
// @Success      200  {object}  response.Response{data=models.MatchListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /matchmaking/matches [get]
func (h *MatchmakingHandler) TopMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	top, _ := strconv.Atoi(c.DefaultQuery("top", "0"))

	result, err := h.service.TopMatches(c.Request.Context(), userID, top)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// Candidates godoc
// @Summary      Get candidate free agents
// @Description  Free agents ranked against the creator's team needs, including goal alignment.
// @Tags         matchmaking
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.CandidateListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /matchmaking/candidates [get]
func (h *MatchmakingHandler) Candidates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Candidates(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}
