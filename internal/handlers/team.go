package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luanvr/project-management-api/internal/dto"
	apierrors "github.com/luanvr/project-management-api/internal/errors"
	"github.com/luanvr/project-management-api/internal/services"
)

// TeamHandler coordinates team-related HTTP handlers.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams returns all teams enriched with role usernames.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTOs(teams))
}
