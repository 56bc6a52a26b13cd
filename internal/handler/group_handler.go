package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/gamenight/internal/domain"
)

const (
	// UsernameHeader carries the identity of the caller.
	UsernameHeader = "X-Username"

	usernameKey = "username"
)

// RequireUser rejects requests without a caller identity and stores it in the context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.GetHeader(UsernameHeader))
		if username == "" {
			Error(c, ErrorUnauthorized, UsernameHeader+" header is required", http.StatusUnauthorized)
			c.Abort()
			return
		}
		c.Set(usernameKey, username)
		c.Next()
	}
}

func caller(c *gin.Context) string {
	return c.GetString(usernameKey)
}

// GroupHandler handles group-related HTTP requests.
type GroupHandler struct {
	groupService GroupServiceInterface
}

// NewGroupHandler creates a new group handler.
func NewGroupHandler(groupService GroupServiceInterface) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroup handles POST /groups.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	res, err := h.groupService.CreateGroup(c.Request.Context(), caller(c), req.Name, req.Invited)
	if err != nil {
		ServiceError(c, err)
		return
	}

	skipped := res.Skipped
	if skipped == nil {
		skipped = []string{}
	}

	c.JSON(http.StatusCreated, CreateGroupResponse{
		Group:   domainToGroupResponse(res.Group),
		Skipped: skipped,
	})
}

// GetUserGroups handles GET /groups.
// The optional state query parameter keeps only accepted groups or only pending invites.
func (h *GroupHandler) GetUserGroups(c *gin.Context) {
	var state domain.MembershipState
	if raw := c.Query("state"); raw != "" {
		parsed, err := domain.NewMembershipState(raw)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		state = parsed
	}

	res, err := h.groupService.GetUserGroups(c.Request.Context(), caller(c))
	if err != nil {
		ServiceError(c, err)
		return
	}

	response := UserGroupsResponse{
		Username: res.Username,
		Groups:   domainToGroupResponses(res.Groups),
		Invites:  domainToGroupResponses(res.Invites),
	}
	switch state {
	case domain.StateAccepted:
		response.Invites = []GroupResponse{}
	case domain.StatePending:
		response.Groups = []GroupResponse{}
	}

	c.JSON(http.StatusOK, response)
}

// GetGroupGames handles GET /groups/:group_id/games.
func (h *GroupHandler) GetGroupGames(c *gin.Context) {
	view, err := h.groupService.GetGroupGames(c.Request.Context(), c.Param("group_id"))
	if err != nil {
		ServiceError(c, err)
		return
	}

	games := make([]CandidateGameResponse, len(view.Candidates))
	for i, cand := range view.Candidates {
		games[i] = CandidateGameResponse{
			GameID: int64(cand.Game.GameID),
			Title:  cand.Game.Title,
			Voters: cand.Voters,
		}
	}

	c.JSON(http.StatusOK, GroupGamesResponse{
		Group: domainToGroupResponse(view.Group),
		Games: games,
	})
}

// UpdateGroupName handles PATCH /groups/:group_id.
func (h *GroupHandler) UpdateGroupName(c *gin.Context) {
	var req UpdateGroupNameRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	g, err := h.groupService.UpdateGroupName(c.Request.Context(), caller(c), c.Param("group_id"), req.Name)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, domainToGroupResponse(g))
}

// DeleteGroup handles DELETE /groups/:group_id.
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	if err := h.groupService.DeleteGroup(c.Request.Context(), caller(c), c.Param("group_id")); err != nil {
		ServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SendInvite handles POST /groups/:group_id/invites.
func (h *GroupHandler) SendInvite(c *gin.Context) {
	var req InviteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	m, err := h.groupService.SendInvite(c.Request.Context(), caller(c), c.Param("group_id"), req.Username)
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, domainToMembershipResponse(m))
}

// JoinGroup handles POST /groups/:group_id/join.
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	m, err := h.groupService.JoinGroup(c.Request.Context(), caller(c), c.Param("group_id"))
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, domainToMembershipResponse(m))
}

// DeclineOrExitGroup handles DELETE /groups/:group_id/membership.
func (h *GroupHandler) DeclineOrExitGroup(c *gin.Context) {
	deleted, err := h.groupService.DeclineOrExitGroup(c.Request.Context(), caller(c), c.Param("group_id"))
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExitGroupResponse{GroupDeleted: deleted})
}

// VoteGroupGame handles POST /groups/:group_id/votes.
func (h *GroupHandler) VoteGroupGame(c *gin.Context) {
	var req VoteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	m, err := h.groupService.VoteGroupGame(c.Request.Context(), caller(c), c.Param("group_id"), domain.GameID(*req.GameID))
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, domainToMembershipResponse(m))
}
