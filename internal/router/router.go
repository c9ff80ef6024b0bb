package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListArenas(c *ginext.Context)
	GetArenaByID(c *ginext.Context)
	ListArenasByLocation(c *ginext.Context)
	ListArenasBookedBy(c *ginext.Context)
	GetArenaIDByName(c *ginext.Context)
	ListAvailableArenas(c *ginext.Context)
	CreateArena(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ListBookingsByUser(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListScratchItems(c *ginext.Context)
	SearchScratchItems(c *ginext.Context)
	AddScratchItem(c *ginext.Context)
	GetScratchItem(c *ginext.Context)
	SetScratchItem(c *ginext.Context)
	DeleteScratchItem(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Arenas. Fixed segments registered before the :id-style routes.
		arenas := api.Group("/arenas")
		arenas.GET("", h.ListArenas)
		arenas.GET("/available", h.ListAvailableArenas)
		arenas.GET("/id/:id", h.GetArenaByID)
		arenas.GET("/location/:location", h.ListArenasByLocation)
		arenas.GET("/booked/:firstName/:lastName", h.ListArenasBookedBy)
		arenas.GET("/name/:name", h.GetArenaIDByName)
		arenas.POST("", h.CreateArena)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("", h.ListBookings)
		bookings.GET("/user", h.ListBookingsByUser)
		bookings.POST("", h.CreateBooking)

		// Scratch collection; paths kept from the original API
		testing := api.Group("/testing")
		testing.GET("", h.ListScratchItems)
		testing.GET("/search", h.SearchScratchItems)
		testing.POST("/post", h.AddScratchItem)
		testing.GET("/edit/:id", h.GetScratchItem)
		testing.POST("/edit/:id", h.SetScratchItem)
		testing.GET("/delete/:id", h.DeleteScratchItem)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.NoRoute(func(c *ginext.Context) {
		c.JSON(http.StatusNotFound, ginext.H{"message": "not found"})
	})

	return router
}
