package handler

import (
	"collabase/internal/middleware"
	"collabase/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID extracts the authenticated user's ID from the context.
// Writes a 401 response and returns false if it is missing or malformed.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr := middleware.GetUserID(c)
	if userIDStr == "" {
		response.Unauthorized(c, "user not authenticated")
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return primitive.NilObjectID, false
	}

	return userID, true
}

// pathID parses an ObjectID path parameter. Writes a 400 response and
// returns false if the value is not a valid ObjectID.
func pathID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		response.BadRequest(c, "invalid "+param+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}
