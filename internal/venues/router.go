package venues

import (
	"github.com/gin-gonic/gin"
)

// SetupVenueRoutes mounts the catalog routes. adminGuards protect the rent
// adjustment route (JWT + admin role in production wiring).
func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller, adminGuards ...gin.HandlerFunc) {
	venues := rg.Group("/venues")
	{
		venues.GET("", controller.GetVenues)            // GET /api/v1/venues
		venues.GET("/suggest", controller.SuggestVenue) // GET /api/v1/venues/suggest?guests=N
		venues.GET("/:code", controller.GetVenue)       // GET /api/v1/venues/:code
	}

	admin := rg.Group("/admin/venues")
	admin.Use(adminGuards...)
	{
		admin.PUT("/:code/rent", controller.UpdateRent) // PUT /api/v1/admin/venues/:code/rent
	}
}
