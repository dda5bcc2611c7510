package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/luanvr/project-management-api/internal/errors"
	"github.com/luanvr/project-management-api/internal/services"
)

// SearchHandler coordinates the search HTTP handler.
type SearchHandler struct {
	searchService *services.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search runs a free-text substring search across tasks, projects and users.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		apierrors.BadRequest(c, "Missing query parameter")
		return
	}

	results, err := h.searchService.Search(query)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, results)
}
