// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	CheckoutHandler *handler.CheckoutHandler
	CompanyHandler  *handler.CompanyHandler
	DeviceHandler   *handler.DeviceHandler
	AdminHandler    *handler.AdminHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	checkoutHandler *handler.CheckoutHandler
	companyHandler  *handler.CompanyHandler
	deviceHandler   *handler.DeviceHandler
	adminHandler    *handler.AdminHandler

	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		catalogHandler:      params.CatalogHandler,
		cartHandler:         params.CartHandler,
		orderHandler:        params.OrderHandler,
		checkoutHandler:     params.CheckoutHandler,
		companyHandler:      params.CompanyHandler,
		deviceHandler:       params.DeviceHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)
	// Identity resolution runs on every route. A missing or invalid credential
	// leaves the request anonymous rather than failing it.
	e.Use(r.authMiddleware.ResolvePrincipal)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/google", r.userHandler.GoogleLogin)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public catalog reads
	e.GET("/articles", r.catalogHandler.ListArticles)
	e.GET("/articles/:id", r.catalogHandler.GetArticle)
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/content-blocks", r.catalogHandler.ListContentBlocks)

	// Payment gateway webhook. Authenticated by signature, not by principal.
	e.POST("/webhooks/stripe", r.checkoutHandler.HandleWebhook)

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.RequireUser)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.GET("/profile/:id", r.userHandler.GetProfile)
	}

	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.RequireUser)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.GET("/company/:companyId", r.cartHandler.GetCompanyCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		// Clearing the cart commits it into the ledger in one transaction.
		cartGroup.DELETE("/clear", r.cartHandler.CommitCart)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.RequireUser)
	{
		orderGroup.GET("", r.orderHandler.GetMyOrders)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.RequireUser)
	{
		checkoutGroup.POST("/create-cart-checkout", r.checkoutHandler.CreateCartCheckout)
		checkoutGroup.POST("/create-company-checkout", r.checkoutHandler.CreateCompanyCheckout)
		checkoutGroup.GET("/verify-session", r.checkoutHandler.VerifySession)
	}

	companyGroup := e.Group("/companies")
	companyGroup.Use(r.authMiddleware.RequireUser)
	{
		companyGroup.POST("", r.companyHandler.CreateCompany)
		companyGroup.GET("", r.companyHandler.ListMyCompanies)
		companyGroup.GET("/invitations", r.companyHandler.ListMyInvitations)
		companyGroup.POST("/invitations/:id/accept", r.companyHandler.AcceptInvitation)
		companyGroup.POST("/invitations/:id/decline", r.companyHandler.DeclineInvitation)
		companyGroup.GET("/:id", r.companyHandler.GetCompany)
		companyGroup.DELETE("/:id", r.companyHandler.DeleteCompany)
		companyGroup.GET("/:id/orders", r.orderHandler.GetCompanyOrders)
		companyGroup.GET("/:id/members", r.companyHandler.ListMembers)
		companyGroup.PATCH("/:id/members/:membershipId/role", r.companyHandler.ChangeMemberRole)
		companyGroup.DELETE("/:id/members/:membershipId", r.companyHandler.RemoveMember)
		companyGroup.POST("/:id/leave", r.companyHandler.LeaveCompany)
		companyGroup.POST("/:id/invitations", r.companyHandler.InviteMember)
		companyGroup.GET("/:id/invitations/:invitationId/qrcode", r.companyHandler.InvitationQR)
	}

	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.RequireUser)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.DELETE("/:deviceId", r.deviceHandler.UnregisterDevice)
	}

	// Admin routes require authentication and the platform admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireUser)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/orders", r.orderHandler.GetAllOrders)
		adminGroup.POST("/articles", r.catalogHandler.CreateArticle)
		adminGroup.PATCH("/articles/:id", r.catalogHandler.UpdateArticle)
		adminGroup.DELETE("/articles/:id", r.catalogHandler.DeleteArticle)
		adminGroup.POST("/articles/:id/image", r.catalogHandler.UploadArticleImage)
	}
}
