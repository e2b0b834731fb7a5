// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ExpenseHandler *handler.ExpenseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	expenseHandler *handler.ExpenseHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		expenseHandler: params.ExpenseHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/logout-all", r.userHandler.LogoutAll, r.authMiddleware.Authenticate)
	}

	// Expense routes require a valid access token.
	expenseGroup := e.Group("/expenses")
	expenseGroup.Use(r.authMiddleware.Authenticate)
	{
		expenseGroup.POST("", r.expenseHandler.AddExpense)
		expenseGroup.GET("", r.expenseHandler.ListExpenses)
		expenseGroup.DELETE("/:id", r.expenseHandler.DeleteExpense)
	}
}
