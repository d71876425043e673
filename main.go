package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"animehub-backend/config"
	"animehub-backend/database"
	routes "animehub-backend/internal/app/http"
	"animehub-backend/internal/repo"
	"animehub-backend/internal/search"
	"animehub-backend/internal/store"
	"animehub-backend/internal/usecase"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	kv := store.NewGormStore(database.DB)
	draftRepo := repo.NewDraftRepository(kv)
	settingsRepo := repo.NewSettingsRepository(kv)
	workRepo := repo.NewWorkRepository(kv)
	citations := repo.NewCitationIndex(kv)
	nominations := repo.NewNominationRepository(kv)
	sessions := repo.NewSessionRepository(kv)

	idx, err := search.Open()
	if err != nil {
		logrus.Fatal("Failed to open search index: ", err)
	}
	defer idx.Close()
	if drafts, listErr := draftRepo.List(); listErr != nil {
		logrus.Warn("Failed to load drafts for indexing: ", listErr)
	} else if rebuildErr := idx.Rebuild(drafts); rebuildErr != nil {
		logrus.Warn("Failed to build search index: ", rebuildErr)
	} else {
		logrus.Infof("✅ Indexed %d drafts", len(drafts))
	}

	uc := usecase.New(draftRepo, settingsRepo, workRepo, citations, nominations, sessions, idx)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		UseCases:    uc,
		Works:       workRepo,
		Citations:   citations,
		Nominations: nominations,
		Index:       idx,
	})

	r.Run(":" + config.PORT)
}
