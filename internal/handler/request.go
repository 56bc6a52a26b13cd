package handler

// CreateGroupRequest represents request body for POST /groups.
type CreateGroupRequest struct {
	Name    string   `json:"name" binding:"required"`
	Invited []string `json:"invited"`
}

// UpdateGroupNameRequest represents request body for PATCH /groups/:group_id.
type UpdateGroupNameRequest struct {
	Name string `json:"name" binding:"required"`
}

// InviteRequest represents request body for POST /groups/:group_id/invites.
type InviteRequest struct {
	Username string `json:"username" binding:"required"`
}

// VoteRequest represents request body for POST /groups/:group_id/votes.
type VoteRequest struct {
	GameID *int64 `json:"game_id" binding:"required"`
}
