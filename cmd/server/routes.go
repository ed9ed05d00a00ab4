package main

import (
	"github.com/gin-gonic/gin"

	"agro-chain.backend/internal/interfaces/http/handlers"
	"agro-chain.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	cropHandler       *handlers.CropHandler
	connectionHandler *handlers.ConnectionHandler
	messageHandler    *handlers.MessageHandler
	activityHandler   *handlers.ActivityHandler
	userHandler       *handlers.UserHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.Signup)
			auth.POST("/login", d.authHandler.Login)
		}

		// Crop lifecycle routes (protected; stage transitions are role-gated)
		crops := v1.Group("/crops")
		crops.Use(d.authMiddleware)
		{
			crops.POST("", middleware.RequireFarmer(), d.cropHandler.Create)
			crops.GET("", d.cropHandler.List)
			crops.GET("/jobs", d.cropHandler.AvailableJobs)
			crops.GET("/jobs/mine", middleware.RequireTransporter(), d.cropHandler.MyJobs)
			crops.GET("/:id", d.cropHandler.Get)
			crops.POST("/:id/approve", middleware.RequireWarehouseManager(), d.cropHandler.Approve)
			crops.POST("/:id/reject", middleware.RequireWarehouseManager(), d.cropHandler.Reject)
			crops.POST("/:id/accept-job", middleware.RequireTransporter(), d.cropHandler.AcceptJob)
			crops.POST("/:id/confirm-pickup", middleware.RequireTransporter(), d.cropHandler.ConfirmPickup)
			crops.POST("/:id/mark-delivered", middleware.RequireTransporter(), d.cropHandler.MarkDelivered)
			crops.POST("/:id/confirm-arrival", middleware.RequireWarehouseManager(), d.cropHandler.ConfirmArrival)
			crops.POST("/:id/purchase", middleware.RequireCustomer(), d.cropHandler.Purchase)
		}

		// Connection routes (protected)
		connections := v1.Group("/connections")
		connections.Use(d.authMiddleware)
		{
			connections.GET("", d.connectionHandler.List)
			connections.POST("/requests", d.connectionHandler.SendRequest)
			connections.GET("/requests", d.connectionHandler.PendingRequests)
			connections.POST("/requests/:id/accept", d.connectionHandler.Accept)
			connections.POST("/requests/:id/reject", d.connectionHandler.Reject)
		}

		// Message routes (protected, connection-gated in the usecase)
		messages := v1.Group("/messages")
		messages.Use(d.authMiddleware)
		{
			messages.POST("", d.messageHandler.Send)
			messages.GET("/unread", d.messageHandler.UnreadCount)
			messages.GET("/:userId", d.messageHandler.Conversation)
		}

		// Activity feed routes (protected)
		activities := v1.Group("/activities")
		activities.Use(d.authMiddleware)
		{
			activities.GET("", d.activityHandler.Feed)
			activities.POST("/read", d.activityHandler.MarkRead)
		}

		// User and ledger routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("", d.userHandler.Directory)
			users.GET("/me", d.userHandler.Me)
			users.GET("/me/ledger", d.userHandler.Ledger)
			users.GET("/me/orders", d.userHandler.Orders)
			users.GET("/:id", d.userHandler.Get)
		}

		v1.GET("/settlements/:ref", d.authMiddleware, d.userHandler.Settlement)
	}
}
