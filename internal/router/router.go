package router

import (
	"net/http"

	"github.com/maazimam/parkeasy-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	GetUserBookings(c *ginext.Context)

	CreateListing(c *ginext.Context)
	SearchListings(c *ginext.Context)
	GetListing(c *ginext.Context)
	DeleteListing(c *ginext.Context)
	GetSchedule(c *ginext.Context)
	EditAvailability(c *ginext.Context)
	AvailableTimes(c *ginext.Context)
	Coverage(c *ginext.Context)
	ListListingBookings(c *ginext.Context)
	ListListingReviews(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	DeclineBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ReviewBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Listings
		api.GET("/listings", h.SearchListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/times", h.AvailableTimes)
		api.GET("/listings/:id/coverage", h.Coverage)
		api.GET("/listings/:id/reviews", h.ListListingReviews)
	}

	authed := api.Group("", middleware.RequireActor())
	{
		authed.POST("/listings", h.CreateListing)
		authed.DELETE("/listings/:id", h.DeleteListing)
		authed.GET("/listings/:id/availability", h.GetSchedule)
		authed.PUT("/listings/:id/availability", h.EditAvailability)
		authed.GET("/listings/:id/bookings", h.ListListingBookings)
		authed.POST("/listings/:id/bookings", h.CreateBooking)

		// Bookings
		authed.GET("/bookings/:id", h.GetBooking)
		authed.POST("/bookings/:id/approve", h.ApproveBooking)
		authed.POST("/bookings/:id/decline", h.DeclineBooking)
		authed.DELETE("/bookings/:id", h.CancelBooking)
		authed.POST("/bookings/:id/review", h.ReviewBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
