package contests

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animehub-backend/internal/app/http/middleware"
	contestsdomain "animehub-backend/internal/domain/contests"
	"animehub-backend/internal/repo"
	"animehub-backend/internal/usecase"
)

// ContestDTO is a catalog entry with its derived schedule status attached.
type ContestDTO struct {
	contestsdomain.Contest
	Status contestsdomain.ScheduleStatus `json:"status"`
}

// Handler serves the contest catalog and judge nomination endpoints.
type Handler struct {
	Nominations *repo.NominationRepository
	Nominate    *usecase.NominateWork
	Withdraw    *usecase.WithdrawNomination
}

func (h *Handler) ListContests(c *gin.Context) {
	catalog := contestsdomain.Catalog()
	out := make([]ContestDTO, 0, len(catalog))
	for _, contest := range catalog {
		out = append(out, ContestDTO{Contest: contest, Status: contest.ScheduleStatus()})
	}
	c.JSON(http.StatusOK, gin.H{"contests": out})
}

func (h *Handler) GetContest(c *gin.Context) {
	contest, found := contestsdomain.Find(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contest not found"})
		return
	}
	c.JSON(http.StatusOK, ContestDTO{Contest: contest, Status: contest.ScheduleStatus()})
}

func (h *Handler) ListNominations(c *gin.Context) {
	list, err := h.Nominations.ListByContest(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load nominations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nominations": list})
}

func (h *Handler) PostNomination(c *gin.Context) {
	judge, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var input struct {
		WorkID   string `json:"workId" binding:"required"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Nominate.Execute(c.Param("id"), input.WorkID, input.Category, judge)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save nomination"})
		return
	}
	if !res.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": res.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteNomination(c *gin.Context) {
	judge, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	res, err := h.Withdraw.Execute(c.Param("id"), c.Param("workId"), judge)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw nomination"})
		return
	}
	if !res.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": res.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
