package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"client-intake-backend/internal/middleware"
)

type RouterConfig struct {
	Sessions          *SessionsHandler
	Wizard            *WizardHandler
	Tokens            *middleware.Tokens
	RequestsPerMinute float64
	Logger            *slog.Logger
}

// NewRouter builds the HTTP surface of the intake service.
func NewRouter(cfg RouterConfig) *gin.Engine {
	RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", HealthHandler)

	api := router.Group("/api/v1")
	if cfg.RequestsPerMinute > 0 {
		api.Use(middleware.RateLimitMiddleware(cfg.RequestsPerMinute))
	}

	api.POST("/sessions", cfg.Sessions.CreateSession)

	w := api.Group("/wizard")
	w.Use(middleware.SessionMiddleware(cfg.Tokens))

	w.GET("", cfg.Wizard.GetWizard)
	w.PATCH("/fields", cfg.Wizard.UpdateFields)
	w.POST("/advance", cfg.Wizard.Advance)
	w.POST("/retreat", cfg.Wizard.Retreat)

	// Step 2 list
	w.POST("/services", cfg.Wizard.AddService)
	w.PUT("/services/:index", cfg.Wizard.UpdateService)
	w.DELETE("/services/:index", cfg.Wizard.RemoveService)
	w.POST("/services/:index/image", cfg.Wizard.UploadServiceImage)
	w.DELETE("/services/:index/image", cfg.Wizard.ClearServiceImage)

	// Step 3 links
	w.POST("/social-links", cfg.Wizard.AddSocialLink)
	w.PUT("/social-links/:index", cfg.Wizard.UpdateSocialLink)
	w.DELETE("/social-links/:index", cfg.Wizard.RemoveSocialLink)

	// Selections
	w.POST("/moods/:mood/toggle", cfg.Wizard.ToggleMood)
	w.POST("/contact-methods/:method/toggle", cfg.Wizard.ToggleContactMethod)

	// Files
	w.POST("/files/:slot", cfg.Wizard.UploadFiles)
	w.DELETE("/files/logo", cfg.Wizard.RemoveLogo)
	w.DELETE("/files/style_reference", cfg.Wizard.RemoveStyleReference)
	w.DELETE("/files/photos/:index", cfg.Wizard.RemovePhoto)

	return router
}
