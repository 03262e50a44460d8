package venues

import (
	"errors"
	"net/http"

	"eventrental/internal/shared/utils/input"
	"eventrental/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetVenues(ctx *gin.Context) {
	list := c.service.ListVenues(ctx.Request.Context())
	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", list, nil)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue code is required", nil, "missing venue code")
		return
	}

	venue, err := c.service.GetVenue(ctx.Request.Context(), code)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to get venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved successfully", venue, nil)
}

func (c *Controller) SuggestVenue(ctx *gin.Context) {
	var query SuggestQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	guests, err := input.ParseGuestCount(query.Guests)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid guest count", nil, err.Error())
		return
	}

	suggestion, err := c.service.Suggest(ctx.Request.Context(), guests)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrNoVenueFits) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "No suggestion available", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Suggestion computed successfully", suggestion, nil)
}

func (c *Controller) UpdateRent(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue code is required", nil, "missing venue code")
		return
	}

	var req UpdateRentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, response.ValidationErrors(err))
		return
	}

	venue, err := c.service.UpdateRent(ctx.Request.Context(), code, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrVenueNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrInvalidRentPrice):
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update rent", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Rent updated successfully", venue, nil)
}
