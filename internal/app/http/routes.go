package routes

import (
	"github.com/gin-gonic/gin"

	authapi "animehub-backend/internal/api/auth"
	contestsapi "animehub-backend/internal/api/contests"
	draftsapi "animehub-backend/internal/api/drafts"
	guidesapi "animehub-backend/internal/api/guides"
	worksapi "animehub-backend/internal/api/works"
	"animehub-backend/internal/app/http/middleware"
	"animehub-backend/internal/domain/users"
	"animehub-backend/internal/repo"
	"animehub-backend/internal/search"
	"animehub-backend/internal/usecase"
)

// Deps is everything the route table needs.
type Deps struct {
	UseCases    *usecase.UseCases
	Works       *repo.WorkRepository
	Citations   *repo.CitationIndex
	Nominations *repo.NominationRepository
	Index       *search.Index
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	authHandler := &authapi.Handler{
		Login:  d.UseCases.Login,
		Logout: d.UseCases.Logout,
	}
	draftsHandler := &draftsapi.Handler{
		Save:         d.UseCases.SaveGuideDraft,
		Get:          d.UseCases.GetGuideDraft,
		List:         d.UseCases.ListGuideDrafts,
		Delete:       d.UseCases.DeleteGuideDraft,
		SaveSettings: d.UseCases.SaveGuideSettings,
		GetSettings:  d.UseCases.GetGuideSettings,
	}
	worksHandler := &worksapi.Handler{
		Works:            d.Works,
		Create:           d.UseCases.CreateWork,
		Update:           d.UseCases.UpdateWork,
		ToggleVisibility: d.UseCases.ToggleVisibility,
		SubmitToContest:  d.UseCases.SubmitToContest,
	}
	guidesHandler := &guidesapi.Handler{Citations: d.Citations, Index: d.Index}
	contestsHandler := &contestsapi.Handler{
		Nominations: d.Nominations,
		Nominate:    d.UseCases.NominateWork,
		Withdraw:    d.UseCases.WithdrawNomination,
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/guides/search", guidesHandler.SearchGuides)
	r.GET("/guides/:id/citations", guidesHandler.GetCitations)
	r.GET("/contests", contestsHandler.ListContests)
	r.GET("/contests/:id", contestsHandler.GetContest)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authHandler.PostLogin)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())
	auth.POST("/logout", authHandler.PostLogout)
	auth.GET("/me", authHandler.GetMe)

	auth.GET("/drafts", draftsHandler.ListDrafts)
	auth.GET("/drafts/:id", draftsHandler.GetDraft)
	auth.PUT("/drafts/:id", draftsHandler.PutDraft)
	auth.DELETE("/drafts/:id", draftsHandler.DeleteDraft)
	auth.GET("/drafts/:id/preview", draftsHandler.GetPreview)
	auth.GET("/drafts/:id/settings", draftsHandler.GetDraftSettings)
	auth.PUT("/drafts/:id/settings", draftsHandler.PutDraftSettings)

	auth.GET("/works", worksHandler.ListWorks)
	auth.POST("/works", worksHandler.PostWork)
	auth.PUT("/works/:id", worksHandler.PutWork)
	auth.POST("/works/:id/visibility", worksHandler.PostToggleVisibility)
	auth.POST("/works/:id/submit", worksHandler.PostSubmitToContest)

	// Judges
	judge := auth.Group("/")
	judge.Use(middleware.RequireRole(users.RoleJudge))
	judge.GET("/contests/:id/nominations", contestsHandler.ListNominations)
	judge.POST("/contests/:id/nominations", contestsHandler.PostNomination)
	judge.DELETE("/contests/:id/nominations/:workId", contestsHandler.DeleteNomination)
}
