package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mishasvintus/gamenight/internal/handler"
	"github.com/mishasvintus/gamenight/internal/logging"
)

// SetupRoutes configures all API routes.
func SetupRoutes(groupHandler *handler.GroupHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.GinLogger(logger))

	// Group endpoints, all on behalf of the caller in X-Username
	groups := r.Group("/groups", handler.RequireUser())
	groups.POST("", groupHandler.CreateGroup)
	groups.GET("", groupHandler.GetUserGroups)
	groups.PATCH("/:group_id", groupHandler.UpdateGroupName)
	groups.DELETE("/:group_id", groupHandler.DeleteGroup)

	// Games and votes
	groups.GET("/:group_id/games", groupHandler.GetGroupGames)
	groups.POST("/:group_id/votes", groupHandler.VoteGroupGame)

	// Invites and membership
	groups.POST("/:group_id/invites", groupHandler.SendInvite)
	groups.POST("/:group_id/join", groupHandler.JoinGroup)
	groups.DELETE("/:group_id/membership", groupHandler.DeclineOrExitGroup)

	return r
}
