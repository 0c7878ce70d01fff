package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/wedplan/marketplace-api/internal/config"
	"github.com/wedplan/marketplace-api/internal/constants"
	"github.com/wedplan/marketplace-api/internal/handlers"
	"github.com/wedplan/marketplace-api/internal/middleware"
	"github.com/wedplan/marketplace-api/internal/services"
	"github.com/wedplan/marketplace-api/internal/storage"
	"github.com/wedplan/marketplace-api/internal/validation"
	"github.com/wedplan/marketplace-api/internal/ws"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Report validation failures by JSON field name
	validation.Register()

	// The entity store is constructed here and injected everywhere it is
	// needed; nothing else owns or reaches it directly.
	store := storage.NewMemoryStore()
	hub := ws.NewHub()

	// Initialize services
	authService := services.NewAuthService(store)
	userService := services.NewUserService(store)
	forumService := services.NewForumService(store)
	inquiryService := services.NewInquiryService(store, store, hub)
	chatService := services.NewChatService(store, store, hub)
	portfolioService := services.NewPortfolioService(store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	businessHandler := handlers.NewBusinessHandler(userService)
	forumHandler := handlers.NewForumHandler(forumService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	profileHandler := handlers.NewProfileHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	chatHandler := handlers.NewChatHandler(chatService)
	wsHandler := handlers.NewWSHandler(hub)

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with a cookie store. All domain state is
	// volatile and single-process, so sessions are too.
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Marketplace API is running",
		})
	})

	// Real-time notification channel
	r.GET("/ws", middleware.RequireAuth(), wsHandler.Connect)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", middleware.RequireAuth(), authHandler.Logout)
		api.GET("/user", middleware.RequireAuth(), authHandler.CurrentUser)

		// Business directory (public)
		api.GET("/businesses", businessHandler.List)

		// Forum routes
		api.GET("/forum", forumHandler.ListPosts)
		api.POST("/forum", middleware.RequireAuth(), forumHandler.CreatePost)
		api.GET("/forum/:postId/replies", forumHandler.ListReplies)
		api.POST("/forum/:postId/replies", middleware.RequireAuth(), forumHandler.CreateReply)
		api.DELETE("/forum/:postId", middleware.RequireAuth(), forumHandler.DeletePost)

		// Inquiry routes (protected)
		api.POST("/inquiries", middleware.RequireAuth(), inquiryHandler.Create)
		api.GET("/inquiries", middleware.RequireAuth(), inquiryHandler.List)

		// Profile routes (protected)
		api.PATCH("/profile", middleware.RequireAuth(), profileHandler.Update)
		api.DELETE("/profile", middleware.RequireAuth(), profileHandler.Delete)

		// Portfolio routes
		api.POST("/portfolio", middleware.RequireAuth(), portfolioHandler.Create)
		api.GET("/portfolio/:userId", portfolioHandler.ListByUser)

		// Chat routes (protected)
		api.POST("/chats", middleware.RequireAuth(), chatHandler.Send)
		api.GET("/chats/:userId", middleware.RequireAuth(), chatHandler.Conversation)
		api.POST("/chats/:chatId/read", middleware.RequireAuth(), chatHandler.MarkRead)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
