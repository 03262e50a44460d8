package events

// Service names an optional service line of a quote.
type Service string

const (
	ServiceTable      Service = "table"
	ServiceDecoration Service = "decoration"
	ServiceCake       Service = "cake"
	ServiceMusic      Service = "music"
)

type ServiceCharge struct {
	Service Service `json:"service"`
	Amount  float64 `json:"amount"`
}

// Breakdown is the itemised price of an event. Services only lists what the
// event's category supports, in table, decoration, cake, music order.
type Breakdown struct {
	Rent      float64         `json:"rent"`
	Services  []ServiceCharge `json:"services"`
	Food      float64         `json:"food"`
	Beverages float64         `json:"beverages"`
}

// Total returns rent + services + food + beverages.
func (b Breakdown) Total() float64 {
	total := b.Rent
	for _, s := range b.Services {
		total += s.Amount
	}
	return total + b.Food + b.Beverages
}

// Charge returns the amount of a service line, if the category has it.
func (b Breakdown) Charge(s Service) (float64, bool) {
	for _, c := range b.Services {
		if c.Service == s {
			return c.Amount, true
		}
	}
	return 0, false
}
