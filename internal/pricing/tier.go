package pricing

import "fmt"

// Tier is the pricing level an event (or a menu item) belongs to.
type Tier string

const (
	TierNull     Tier = "Null"
	TierStandard Tier = "Standard"
	TierLuxo     Tier = "Luxo"
	TierPremier  Tier = "Premier"
	// TierGeneral tags menu items that are offered to every tier.
	TierGeneral Tier = "General"
	// TierLuxoPremier tags menu items reserved to Luxo and Premier events.
	TierLuxoPremier Tier = "LuxoPremier"
)

// IsValid checks if the tier is one of the known values
func (t Tier) IsValid() bool {
	switch t {
	case TierNull, TierStandard, TierLuxo, TierPremier, TierGeneral, TierLuxoPremier:
		return true
	}
	return false
}

// IsEventTier reports whether an event can be booked at this tier.
// General and LuxoPremier only ever tag menu items.
func (t Tier) IsEventTier() bool {
	switch t {
	case TierNull, TierStandard, TierLuxo, TierPremier:
		return true
	}
	return false
}

// String returns the string representation of Tier
func (t Tier) String() string {
	return string(t)
}

// Allows reports whether an item tagged with itemTier is offered to an event of tier t.
func (t Tier) Allows(itemTier Tier) bool {
	switch itemTier {
	case TierGeneral:
		return true
	case TierLuxoPremier:
		return t == TierLuxo || t == TierPremier
	}
	return itemTier == t
}

// ParseTier converts a stored or operator-supplied name into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %q", s)
	}
	return t, nil
}
