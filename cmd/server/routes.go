package main

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"alumni-connect.backend/internal/interfaces/http/handlers"
	"alumni-connect.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	profileHandler      *handlers.ProfileHandler
	directoryHandler    *handlers.DirectoryHandler
	eventHandler        *handlers.EventHandler
	registrationHandler *handlers.RegistrationHandler
	archiveHandler      *handlers.ArchiveHandler
	exportHandler       *handlers.ExportHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
	profileMiddleware   gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/google", d.authHandler.GoogleSignIn)
			auth.GET("/google/redirect", d.authHandler.GoogleRedirect)
			auth.GET("/google/callback", d.authHandler.GoogleCallback)
			auth.GET("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/reapply", d.authHandler.Reapply)
			auth.POST("/logout", d.authHandler.Logout)
		}

		// Member routes (approved members only)
		member := v1.Group("")
		member.Use(d.authMiddleware, d.profileMiddleware)
		{
			member.GET("/profile", d.profileHandler.Me)
			member.PUT("/profile", d.profileHandler.Update)
			member.POST("/profile/change-password", d.profileHandler.ChangePassword)

			member.GET("/directory", d.directoryHandler.List)

			member.GET("/events", d.eventHandler.List)
			member.GET("/events/:id", d.eventHandler.Get)
			member.POST("/events/:id/join", middleware.IdempotencyMiddleware(), d.registrationHandler.Join)
			member.GET("/registrations", d.registrationHandler.MyRegistrations)

			member.GET("/archives", d.archiveHandler.List)
			member.GET("/archives/:id", d.archiveHandler.Get)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin(), d.profileMiddleware)
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/users/:id", d.adminHandler.GetUser)
			admin.POST("/users/:id/approve", d.adminHandler.ApproveUser)
			admin.POST("/users/:id/reject", d.adminHandler.RejectUser)
			admin.DELETE("/users/:id", d.adminHandler.RemoveUser)
			admin.PUT("/users/:id/role", middleware.RequireSuperAdmin(), d.adminHandler.ChangeRole)

			admin.POST("/events", d.eventHandler.Create)
			admin.PUT("/events/:id", d.eventHandler.Update)
			admin.DELETE("/events/:id", d.eventHandler.Delete)
			admin.POST("/events/sync-statuses", d.eventHandler.SyncStatuses)

			admin.GET("/events/:id/participants", d.registrationHandler.ListByEvent)
			admin.POST("/participants/:id/approve", d.registrationHandler.Approve)
			admin.POST("/participants/:id/reject", d.registrationHandler.Reject)

			admin.POST("/events/:id/archive", d.archiveHandler.Archive)

			admin.GET("/events/:id/export", d.exportHandler.ParticipantsCSV)
			admin.GET("/events/:id/report", d.exportHandler.Report)
			admin.GET("/archives/:id/export", d.exportHandler.ArchiveCSV)

			admin.GET("/stats", d.adminHandler.Stats)
			admin.GET("/activity", d.adminHandler.Activity)
		}
	}
}

// applyCORSMiddleware allows the frontend origin
func applyCORSMiddleware(r *gin.Engine, frontendURL string) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == frontendURL {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Session-ID, Idempotency-Key, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

// registerHealthRoute exposes liveness plus a database ping
func registerHealthRoute(r *gin.Engine, sqlDB *sql.DB) {
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "up"
		if err := sqlDB.Ping(); err != nil {
			dbStatus = "down"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": dbStatus,
		})
	})
}
