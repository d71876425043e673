package guides

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"animehub-backend/internal/repo"
	"animehub-backend/internal/search"
)

const defaultSearchLimit = 20

// Handler serves the public guide endpoints: citation lists and draft search.
type Handler struct {
	Citations *repo.CitationIndex
	Index     *search.Index
}

func (h *Handler) GetCitations(c *gin.Context) {
	list, err := h.Citations.ListForGuide(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load citations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"citations": list})
}

func (h *Handler) SearchGuides(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}
	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	results, err := h.Index.Search(query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "count": len(results), "results": results})
}
