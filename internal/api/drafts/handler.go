package drafts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animehub-backend/internal/markdown"
	"animehub-backend/internal/usecase"
)

// Handler serves the guide draft and settings endpoints.
type Handler struct {
	Save         *usecase.SaveGuideDraft
	Get          *usecase.GetGuideDraft
	List         *usecase.ListGuideDrafts
	Delete       *usecase.DeleteGuideDraft
	SaveSettings *usecase.SaveGuideSettings
	GetSettings  *usecase.GetGuideSettings
}

func (h *Handler) ListDrafts(c *gin.Context) {
	drafts, err := h.List.Execute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drafts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

func (h *Handler) GetDraft(c *gin.Context) {
	draft, err := h.Get.Execute(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) PutDraft(c *gin.Context) {
	var input usecase.SaveGuideDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	draft, err := h.Save.Execute(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) DeleteDraft(c *gin.Context) {
	if err := h.Delete.Execute(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPreview renders the draft's markdown to HTML.
func (h *Handler) GetPreview(c *gin.Context) {
	draft, err := h.Get.Execute(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}
	html, err := markdown.Render(draft.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": draft.ID, "title": draft.Title, "html": html})
}

func (h *Handler) GetDraftSettings(c *gin.Context) {
	settings, err := h.GetSettings.Execute(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	if settings == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) PutDraftSettings(c *gin.Context) {
	var input usecase.SaveGuideSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ArticleID = c.Param("id")

	settings, err := h.SaveSettings.Execute(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
