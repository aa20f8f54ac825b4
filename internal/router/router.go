package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SearchRooms(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CheckoutBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	CreateReview(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Rooms
		api.GET("/rooms/search", h.SearchRooms)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/checkout", h.CheckoutBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Payments
		api.POST("/payments/webhook", h.PaymentWebhook)

		// Reviews
		api.POST("/reviews", h.CreateReview)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
