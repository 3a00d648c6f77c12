// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	OfferHandler   *handler.OfferHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	StatsHandler   *handler.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	offerHandler   *handler.OfferHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	statsHandler   *handler.StatsHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		offerHandler:   params.OfferHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		statsHandler:   params.StatsHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticate := r.authMiddleware.Authenticate

	// Account routes, open to anonymous callers
	api.POST("/registration/", r.userHandler.Register)
	api.POST("/login/", r.userHandler.Login)

	// Profile directory
	api.GET("/profile/:user_id/", r.profileHandler.GetProfile, authenticate)
	api.PATCH("/profile/:user_id/", r.profileHandler.UpdateProfile, authenticate)
	api.GET("/profiles/business/", r.profileHandler.ListBusinessProfiles, authenticate)
	api.GET("/profiles/customer/", r.profileHandler.ListCustomerProfiles, authenticate)

	// Offer catalog; the listing is public, everything else needs a login
	api.GET("/offers/", r.offerHandler.ListOffers)
	api.POST("/offers/", r.offerHandler.CreateOffer, authenticate)
	api.GET("/offers/:id/", r.offerHandler.GetOffer, authenticate)
	api.PATCH("/offers/:id/", r.offerHandler.UpdateOffer, authenticate)
	api.DELETE("/offers/:id/", r.offerHandler.DeleteOffer, authenticate)
	api.GET("/offerdetails/:id/", r.offerHandler.GetOfferDetail, authenticate)

	// Order ledger, fully authenticated
	api.GET("/orders/", r.orderHandler.ListOrders, authenticate)
	api.POST("/orders/", r.orderHandler.CreateOrder, authenticate)
	api.GET("/orders/:id/", r.orderHandler.GetOrder, authenticate)
	api.PATCH("/orders/:id/", r.orderHandler.UpdateOrderStatus, authenticate)
	api.DELETE("/orders/:id/", r.orderHandler.DeleteOrder, authenticate)
	api.GET("/order-count/:business_user_id/", r.orderHandler.CountOrders, authenticate)
	api.GET("/completed-order-count/:business_user_id/", r.orderHandler.CountCompletedOrders, authenticate)

	// Review registry, fully authenticated
	api.GET("/reviews/", r.reviewHandler.ListReviews, authenticate)
	api.POST("/reviews/", r.reviewHandler.CreateReview, authenticate)
	api.GET("/reviews/:id/", r.reviewHandler.GetReview, authenticate)
	api.PATCH("/reviews/:id/", r.reviewHandler.UpdateReview, authenticate)
	api.DELETE("/reviews/:id/", r.reviewHandler.DeleteReview, authenticate)

	// Platform aggregates
	api.GET("/base-info/", r.statsHandler.GetBaseInfo)
}
