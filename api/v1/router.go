package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/ticketdesk-simple/middleware"
	"github.com/ticketdesk-simple/services"
)

// Services shared by the v1 handlers, wired in RegisterRoutes once the
// environment is loaded.
var (
	emailService        *services.EmailService
	notificationService *services.NotificationService
	ticketService       *services.TicketService
	projectService      *services.ProjectService
	userService         *services.UserService
)

// RegisterRoutes wires the v1 services and registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	emailService = services.NewEmailService()
	notificationService = services.NewNotificationService(emailService)
	ticketService = services.NewTicketService(notificationService)
	projectService = services.NewProjectService(emailService)
	userService = services.NewUserService(emailService)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Ticket endpoints - protected by AuthMiddleware
	ticketGroup := router.Group("/tickets")
	ticketGroup.Use(middleware.AuthMiddleware())
	{
		ticketGroup.GET("", ListTickets)
		ticketGroup.POST("", CreateTicket)
		ticketGroup.GET("/:id", GetTicket)
		ticketGroup.PUT("/:id", UpdateTicket)
		ticketGroup.DELETE("/:id", DeleteTicket)
		// Assignment is restricted to triaging roles
		ticketGroup.POST("/:id/assign", middleware.TriageMiddleware(), AssignTicket)
	}

	// Notification endpoints - protected by AuthMiddleware
	notificationGroup := router.Group("/notifications")
	notificationGroup.Use(middleware.AuthMiddleware())
	{
		notificationGroup.GET("", ListNotifications)
		notificationGroup.GET("/unread-count", GetUnreadCount)
		notificationGroup.PUT("/:id/read", MarkNotificationRead)
	}

	// Project endpoints - admin only
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.POST("/:id/assign-users", AssignUsersToProject)
	}

	// User management endpoints - admin only
	userGroup := router.Group("/users")
	userGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		userGroup.GET("", ListUsers)
		userGroup.POST("", CreateUser)
		userGroup.GET("/:id", GetUser)
		userGroup.PUT("/:id", UpdateUser)
		userGroup.DELETE("/:id", DeleteUser)
	}
}
