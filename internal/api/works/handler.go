package works

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animehub-backend/internal/app/http/middleware"
	"animehub-backend/internal/repo"
	"animehub-backend/internal/usecase"
)

// Handler serves the work endpoints. Every route is authenticated; the
// acting user comes off the token claims.
type Handler struct {
	Works            *repo.WorkRepository
	Create           *usecase.CreateWork
	Update           *usecase.UpdateWork
	ToggleVisibility *usecase.ToggleWorkVisibility
	SubmitToContest  *usecase.SubmitWorkToContest
}

func (h *Handler) ListWorks(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	list, err := h.Works.ListByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load works"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"works": list})
}

func (h *Handler) PostWork(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var input usecase.WorkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	res, err := h.Create.Execute(input, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save work"})
		return
	}
	if !res.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": res.Error})
		return
	}
	c.JSON(http.StatusCreated, res.Work)
}

func (h *Handler) PutWork(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var input usecase.WorkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Update.Execute(c.Param("id"), user.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update work"})
		return
	}
	if !res.Success {
		writeFailure(c, res.Error)
		return
	}
	c.JSON(http.StatusOK, res.Work)
}

func (h *Handler) PostToggleVisibility(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	res, err := h.ToggleVisibility.Execute(c.Param("id"), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update work"})
		return
	}
	if !res.Success {
		writeFailure(c, res.Error)
		return
	}
	c.JSON(http.StatusOK, res.Work)
}

func (h *Handler) PostSubmitToContest(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var input struct {
		ContestID string `json:"contestId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.SubmitToContest.Execute(c.Param("id"), user.ID, input.ContestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit work"})
		return
	}
	if !res.Success {
		writeFailure(c, res.Error)
		return
	}
	c.JSON(http.StatusOK, res.Work)
}

func writeFailure(c *gin.Context, msg string) {
	switch msg {
	case "work not found", "contest not found":
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	}
}
