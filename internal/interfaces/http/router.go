// Package http wires the gin engine: middleware, route groups and the
// handlers behind them.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authApp "vitrine/internal/application/auth"
	contentApp "vitrine/internal/application/content"
	mediaApp "vitrine/internal/application/media"
	"vitrine/internal/infrastructure/config"
	"vitrine/internal/infrastructure/ratelimit"
	"vitrine/internal/interfaces/http/handlers"
	"vitrine/internal/interfaces/http/middleware"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
	"vitrine/internal/shared/version"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	authHandler    *handlers.AuthHandler
	contentHandler *handlers.ContentHandler
	mediaHandler   *handlers.MediaHandler

	authMiddleware *middleware.AuthMiddleware
	apiLimiter     *ratelimit.APILimiter
}

func NewRouter(
	cfg *config.Config,
	authService *authApp.Service,
	contentService *contentApp.Service,
	mediaService *mediaApp.Service,
	apiLimiter *ratelimit.APILimiter,
	log logger.Interface,
) *Router {
	return &Router{
		engine:         gin.New(),
		cfg:            cfg,
		logger:         log,
		authHandler:    handlers.NewAuthHandler(authService, log),
		contentHandler: handlers.NewContentHandler(contentService, log),
		mediaHandler:   handlers.NewMediaHandler(mediaService, log),
		authMiddleware: middleware.NewAuthMiddleware(authService, log),
		apiLimiter:     apiLimiter,
	}
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.RateLimit(r.apiLimiter))

	r.engine.NoRoute(r.NotFoundHandler())

	r.engine.GET("/health", r.healthCheck)

	r.setupAuthRoutes()
	r.setupContentRoutes()
	r.setupAdminRoutes()
}

func (r *Router) healthCheck(c *gin.Context) {
	utils.OKResponse(c, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes() {
	auth := r.engine.Group("/api/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/session", r.authMiddleware.RequireAdmin(), r.authHandler.Session)
	}
}

// setupContentRoutes configures the public read-only routes
func (r *Router) setupContentRoutes() {
	content := r.engine.Group("/api/content")
	{
		content.GET("/projects", r.contentHandler.ListProjects)
		content.GET("/projects/:id", r.contentHandler.GetProject)
		content.GET("/testimonials", r.contentHandler.ListTestimonials)
		content.GET("/achievements", r.contentHandler.ListAchievements)
		content.GET("/sitetext", r.contentHandler.ListSiteTexts)
		content.GET("/sitetext/:key", r.contentHandler.GetSiteText)
	}

	r.engine.GET("/api/media/url", r.mediaHandler.SignedURL)
}

// setupAdminRoutes configures the session-gated write routes
func (r *Router) setupAdminRoutes() {
	admin := r.engine.Group("/api/admin")
	admin.Use(r.authMiddleware.RequireAdmin())
	{
		admin.POST("/projects", r.contentHandler.CreateProject)
		admin.PUT("/projects/:id", r.contentHandler.UpdateProject)
		admin.DELETE("/projects/:id", r.contentHandler.DeleteProject)

		admin.POST("/testimonials", r.contentHandler.CreateTestimonial)
		admin.PUT("/testimonials/:id", r.contentHandler.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", r.contentHandler.DeleteTestimonial)

		admin.POST("/achievements", r.contentHandler.CreateAchievement)
		admin.PUT("/achievements/:id", r.contentHandler.UpdateAchievement)
		admin.DELETE("/achievements/:id", r.contentHandler.DeleteAchievement)

		admin.PUT("/sitetext/:key", r.contentHandler.SetSiteText)
		admin.DELETE("/sitetext/:key", r.contentHandler.DeleteSiteText)

		admin.POST("/media", r.mediaHandler.Upload)
		admin.GET("/buckets", r.mediaHandler.ListBuckets)
	}
}

// NotFoundHandler returns a JSON 404 for unknown routes
func (r *Router) NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "route not found")
	}
}
