// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	apimiddleware "makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/router/handler"
	"makan/internal/delivery/middleware"
	"makan/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	RecipeHandler  *handler.RecipeHandler
	ReviewHandler  *handler.ReviewHandler
	CommentHandler *handler.CommentHandler
	SearchHandler  *handler.SearchHandler
	SavedHandler   *handler.SavedHandler
	ChatHandler    *handler.ChatHandler
	ScannerHandler *handler.ScannerHandler
	DeviceHandler  *handler.DeviceHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *apimiddleware.AuthMiddleware
	IdentityCache  *middleware.IdentityCacheMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	recipeHandler  *handler.RecipeHandler
	reviewHandler  *handler.ReviewHandler
	commentHandler *handler.CommentHandler
	searchHandler  *handler.SearchHandler
	savedHandler   *handler.SavedHandler
	chatHandler    *handler.ChatHandler
	scannerHandler *handler.ScannerHandler
	deviceHandler  *handler.DeviceHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *apimiddleware.AuthMiddleware
	identityCache  *middleware.IdentityCacheMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		recipeHandler:  params.RecipeHandler,
		reviewHandler:  params.ReviewHandler,
		commentHandler: params.CommentHandler,
		searchHandler:  params.SearchHandler,
		savedHandler:   params.SavedHandler,
		chatHandler:    params.ChatHandler,
		scannerHandler: params.ScannerHandler,
		deviceHandler:  params.DeviceHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
		identityCache:  params.IdentityCache,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Stored images for file and in-memory buckets
	e.GET("/images/*", r.imageHandler.ServeImage)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/personal", r.authHandler.RegisterPersonal)
		authGroup.POST("/register/business", r.authHandler.RegisterBusiness)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password/forgot", r.authHandler.ForgotPassword)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	apiV1.Use(r.identityCache.Process)

	apiV1.PUT("/auth/password", r.authHandler.ChangePassword)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/avatar", r.profileHandler.UploadAvatar)
	}

	accountsGroup := apiV1.Group("/accounts")
	{
		accountsGroup.GET("/search", r.profileHandler.SearchAccounts)
		accountsGroup.GET("/:id/identity", r.profileHandler.GetIdentity)
	}

	recipesGroup := apiV1.Group("/recipes")
	{
		recipesGroup.POST("", r.recipeHandler.CreateRecipe)
		recipesGroup.GET("", r.recipeHandler.ListRecipes)
		recipesGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipesGroup.DELETE("/:id", r.recipeHandler.DeleteRecipe)
		recipesGroup.GET("/:id/scaled", r.recipeHandler.ScaleRecipe)
		recipesGroup.POST("/:id/comments", r.commentHandler.AddComment(entity.ItemKindRecipe))
		recipesGroup.GET("/:id/comments", r.commentHandler.ListComments(entity.ItemKindRecipe))
	}

	reviewsGroup := apiV1.Group("/reviews")
	{
		reviewsGroup.POST("", r.reviewHandler.CreateReview)
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
		reviewsGroup.POST("/:id/comments", r.commentHandler.AddComment(entity.ItemKindReview))
		reviewsGroup.GET("/:id/comments", r.commentHandler.ListComments(entity.ItemKindReview))
	}

	apiV1.GET("/search", r.searchHandler.SearchContent)

	savedGroup := apiV1.Group("/saved")
	{
		savedGroup.GET("", r.savedHandler.ListSaved)
		savedGroup.POST("/toggle", r.savedHandler.Toggle)
		savedGroup.GET("/:kind/:id", r.savedHandler.IsSaved)
		savedGroup.PUT("/:kind/:id", r.savedHandler.Save)
		savedGroup.DELETE("/:kind/:id", r.savedHandler.Unsave)
	}

	chatsGroup := apiV1.Group("/chats")
	{
		chatsGroup.POST("", r.chatHandler.StartChat)
		chatsGroup.GET("", r.chatHandler.ListThreads)
		chatsGroup.POST("/qr", r.chatHandler.StartChatFromQR)
		chatsGroup.GET("/:id/messages", r.chatHandler.ListMessages)
		chatsGroup.POST("/:id/messages", r.chatHandler.SendMessage)
	}

	scannerGroup := apiV1.Group("/scanner")
	{
		scannerGroup.POST("/dish", r.scannerHandler.IdentifyDish)
		scannerGroup.POST("/healthier", r.scannerHandler.HealthierOptions)
		scannerGroup.POST("/nutrition", r.scannerHandler.EstimateNutrition)
		scannerGroup.POST("/dietary", r.scannerHandler.DietaryAlternatives)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetAccountDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Business routes (require business role)
	businessGroup := apiV1.Group("/business")
	businessGroup.Use(r.authMiddleware.RequireRole(entity.RoleBusiness))
	{
		businessGroup.GET("/qr", r.profileHandler.ContactQRCode)
	}
}
