package venues

type SuggestQuery struct {
	Guests string `form:"guests" binding:"required"`
}

type UpdateRentRequest struct {
	RentPrice *float64 `json:"rent_price" binding:"required,min=0"`
}
