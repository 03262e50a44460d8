package bookings

type BeverageOrder struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

// QuoteRequest describes the event to price. VenueCode and Date are optional:
// when missing the cheapest fitting venue and its next available date are used.
type QuoteRequest struct {
	Category  string          `json:"category" binding:"required"`
	Tier      string          `json:"tier"`
	Guests    int             `json:"guests" binding:"required,gt=0"`
	VenueCode string          `json:"venue_code"`
	Date      string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Beverages []BeverageOrder `json:"beverages" binding:"omitempty,dive"`
	Foods     []string        `json:"foods"`
}

// BeverageMenuQuery filters the menu. Quantity is operator text; when set,
// every listed drink carries it so clients can read per-item subtotals.
type BeverageMenuQuery struct {
	Category string `form:"category"`
	Tier     string `form:"tier"`
	Quantity string `form:"quantity"`
}
