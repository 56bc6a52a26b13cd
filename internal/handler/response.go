package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/service"
)

// ErrorCode represents machine-readable error codes returned by the API.
type ErrorCode string

const (
	ErrorNotFound           ErrorCode = "NOT_FOUND"
	ErrorMembershipExists   ErrorCode = "MEMBERSHIP_EXISTS"
	ErrorConcurrentUpdate   ErrorCode = "CONCURRENT_UPDATE"
	ErrorLibraryUnavailable ErrorCode = "LIBRARY_UNAVAILABLE"
	ErrorUnauthorized       ErrorCode = "UNAUTHORIZED"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// GroupResponse wraps group data.
type GroupResponse struct {
	GroupID   string               `json:"group_id"`
	Name      string               `json:"name"`
	CreatedAt string               `json:"created_at,omitempty"`
	Members   []MembershipResponse `json:"members"`
}

// MembershipResponse represents a membership in response.
type MembershipResponse struct {
	GroupID  string  `json:"group_id"`
	Username string  `json:"username"`
	State    string  `json:"state"`
	Voted    []int64 `json:"voted"`
}

// CandidateGameResponse represents a common game and its voters.
type CandidateGameResponse struct {
	GameID int64    `json:"game_id"`
	Title  string   `json:"title"`
	Voters []string `json:"voters"`
}

// GroupGamesResponse wraps get group games response.
type GroupGamesResponse struct {
	Group *GroupResponse          `json:"group"`
	Games []CandidateGameResponse `json:"games"`
}

// UserGroupsResponse wraps get user groups response.
type UserGroupsResponse struct {
	Username string          `json:"username"`
	Groups   []GroupResponse `json:"groups"`
	Invites  []GroupResponse `json:"invites"`
}

// CreateGroupResponse wraps create group response.
type CreateGroupResponse struct {
	Group   *GroupResponse `json:"group"`
	Skipped []string       `json:"skipped"`
}

// ExitGroupResponse wraps decline/exit response.
type ExitGroupResponse struct {
	GroupDeleted bool `json:"group_deleted"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: struct {
			Code    ErrorCode `json:"code"`
			Message string    `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusConflict)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, "", message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, "", message, http.StatusInternalServerError)
}

// ServiceError maps a service error to its HTTP response by error kind.
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		Conflict(c, ErrorMembershipExists, err.Error())
	case errors.Is(err, service.ErrConflict):
		Conflict(c, ErrorConcurrentUpdate, err.Error())
	case errors.Is(err, service.ErrBadInput):
		BadRequest(c, err.Error())
	case errors.Is(err, service.ErrLookupFailure):
		Error(c, ErrorLibraryUnavailable, err.Error(), http.StatusBadGateway)
	default:
		InternalError(c, err.Error())
	}
}

func domainToGroupResponse(g *domain.Group) *GroupResponse {
	resp := &GroupResponse{
		GroupID: g.GroupID,
		Name:    g.Name,
		Members: make([]MembershipResponse, len(g.Memberships)),
	}
	if g.CreatedAt != nil {
		resp.CreatedAt = g.CreatedAt.Format(time.RFC3339)
	}
	for i := range g.Memberships {
		resp.Members[i] = domainToMembershipResponse(&g.Memberships[i])
	}
	return resp
}

func domainToMembershipResponse(m *domain.Membership) MembershipResponse {
	voted := make([]int64, len(m.Voted))
	for i, id := range m.Voted {
		voted[i] = int64(id)
	}
	return MembershipResponse{
		GroupID:  m.GroupID,
		Username: m.Username,
		State:    string(m.State()),
		Voted:    voted,
	}
}

func domainToGroupResponses(groups []domain.Group) []GroupResponse {
	out := make([]GroupResponse, len(groups))
	for i := range groups {
		out[i] = *domainToGroupResponse(&groups[i])
	}
	return out
}
