package bookings

import (
	"errors"
	"net/http"

	"eventrental/internal/events"
	"eventrental/internal/registry"
	"eventrental/internal/scheduling"
	"eventrental/internal/shared/utils/input"
	"eventrental/internal/shared/utils/response"
	"eventrental/internal/venues"
	"eventrental/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateQuote handles POST /api/v1/quotes
func (c *Controller) CreateQuote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, response.ValidationErrors(err))
		return
	}

	quote, err := c.service.Quote(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, "Failed to compute quote", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Quote computed successfully", quote, nil)
}

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, response.ValidationErrors(err))
		return
	}

	booking, err := c.service.Book(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, "Failed to book event", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Event booked successfully", booking, nil)
}

// GetCalendar handles GET /api/v1/calendar
func (c *Controller) GetCalendar(ctx *gin.Context) {
	calendar, err := c.service.Calendar(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "Failed to get calendar", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Calendar retrieved successfully", calendar, nil)
}

// GetBeverageMenu handles GET /api/v1/menus/beverages
func (c *Controller) GetBeverageMenu(ctx *gin.Context) {
	var query BeverageMenuQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	menu, err := c.service.BeverageMenu(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, "Failed to get beverage menu", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Beverage menu retrieved successfully", menu, nil)
}

func respondError(ctx *gin.Context, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.GetDefault().LogHTTPError(ctx, err, status)
	}
	response.RespondJSON(ctx, "error", status, message, nil, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, venues.ErrVenueNotFound),
		errors.Is(err, venues.ErrNoVenueFits):
		return http.StatusNotFound
	case errors.Is(err, venues.ErrDateAlreadyBooked):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, scheduling.ErrLeadTime),
		errors.Is(err, ErrInvalidTier),
		errors.Is(err, input.ErrInvalidInput),
		errors.Is(err, events.ErrInvalidCategory),
		errors.Is(err, events.ErrInvalidGuestCount),
		errors.Is(err, events.ErrCapacityExceeded),
		errors.Is(err, events.ErrTierNotAllowed),
		errors.Is(err, events.ErrBeverageNotOffered),
		errors.Is(err, events.ErrInvalidQuantity),
		errors.Is(err, events.ErrFoodSelection),
		errors.Is(err, registry.ErrNotPriced):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
