package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the quote, booking and calendar routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/quotes", controller.CreateQuote)     // POST /api/v1/quotes
	rg.POST("/bookings", controller.CreateBooking) // POST /api/v1/bookings
	rg.GET("/calendar", controller.GetCalendar)    // GET /api/v1/calendar

	menus := rg.Group("/menus")
	{
		menus.GET("/beverages", controller.GetBeverageMenu) // GET /api/v1/menus/beverages?category=X&tier=Y
	}
}

// Route definitions for reference:
//
// QUOTE
// POST   /api/v1/quotes      - Price an event without booking it
// Request body: { "category": "Wedding", "tier": "Luxo", "guests": 200,
//                 "beverages": [{ "name": "Suco Natural", "quantity": 10 }] }
//
// BOOKING
// POST   /api/v1/bookings    - Price and persist an event, same body as /quotes
//
// CALENDAR
// GET    /api/v1/calendar    - Every booked event in load order
