package events

import "eventrental/internal/pricing"

// DefaultBeverageMenu returns a fresh copy of the company's beverage list.
func DefaultBeverageMenu() []Beverage {
	return []Beverage{
		{Name: "Água", UnitPrice: 4, Tier: pricing.TierGeneral},
		{Name: "Água com gás", UnitPrice: 5, Tier: pricing.TierGeneral},
		{Name: "Refrigerante", UnitPrice: 8, Tier: pricing.TierGeneral},
		{Name: "Suco Natural", UnitPrice: 7, Tier: pricing.TierGeneral},
		{Name: "Cerveja", UnitPrice: 12, Tier: pricing.TierGeneral},
		{Name: "Caipirinha", UnitPrice: 18, Tier: pricing.TierStandard},
		{Name: "Drink sem álcool", UnitPrice: 15, Tier: pricing.TierStandard},
		{Name: "Espumante Nac.", UnitPrice: 80, Tier: pricing.TierLuxoPremier},
		{Name: "Espumante Imp.", UnitPrice: 140, Tier: pricing.TierLuxoPremier},
		{Name: "Whisky", UnitPrice: 200, Tier: pricing.TierPremier},
	}
}

// DefaultFoodMenu returns a fresh copy of the company's food list.
func DefaultFoodMenu() []FoodItem {
	return []FoodItem{
		{Name: "Pão de queijo", Tier: pricing.TierGeneral},
		{Name: "Brigadeiro", Tier: pricing.TierGeneral},
		{Name: "Coxinha", Tier: pricing.TierStandard},
		{Name: "Kibe", Tier: pricing.TierStandard},
		{Name: "Pastel", Tier: pricing.TierStandard},
		{Name: "Empada", Tier: pricing.TierStandard},
		{Name: "Bolinha de queijo", Tier: pricing.TierStandard},
		{Name: "Camarão empanado", Tier: pricing.TierLuxoPremier},
		{Name: "Mini quiche", Tier: pricing.TierLuxoPremier},
		{Name: "Bruschetta", Tier: pricing.TierLuxo},
		{Name: "Canapé de salmão", Tier: pricing.TierPremier},
		{Name: "Tartar de atum", Tier: pricing.TierPremier},
		{Name: "Mini burger", Tier: pricing.TierPremier},
	}
}

// FoodFor returns the menu items an event of tier t may choose.
func FoodFor(menu []FoodItem, t pricing.Tier) []FoodItem {
	out := make([]FoodItem, 0, len(menu))
	for _, item := range menu {
		if t.Allows(item.Tier) {
			out = append(out, item)
		}
	}
	return out
}

// BeveragesFor returns the menu beverages an event of tier t is offered.
func BeveragesFor(menu []Beverage, t pricing.Tier) []Beverage {
	out := make([]Beverage, 0, len(menu))
	for _, b := range menu {
		if t.Allows(b.Tier) {
			out = append(out, b)
		}
	}
	return out
}

// FindFood looks menu items up by name, keeping the order of names.
func FindFood(menu []FoodItem, names ...string) ([]FoodItem, error) {
	byName := make(map[string]FoodItem, len(menu))
	for _, item := range menu {
		byName[item.Name] = item
	}

	out := make([]FoodItem, 0, len(names))
	for _, name := range names {
		item, ok := byName[name]
		if !ok {
			return nil, &UnknownFoodError{Name: name}
		}
		out = append(out, item)
	}
	return out, nil
}

// UnknownFoodError reports a food name that is not on the menu.
type UnknownFoodError struct {
	Name string
}

func (e *UnknownFoodError) Error() string {
	return "food not on menu: " + e.Name
}

func (e *UnknownFoodError) Unwrap() error {
	return ErrFoodSelection
}
