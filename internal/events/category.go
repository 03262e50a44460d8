package events

import (
	"fmt"

	"eventrental/internal/pricing"
)

// Category identifies which variant an event is. Each category supports a
// fixed set of optional services.
type Category string

const (
	CategoryWedding        Category = "Wedding"
	CategoryBirthdayParty  Category = "BirthdayParty"
	CategoryCorporateParty Category = "CorporateParty"
	CategoryGraduation     Category = "Graduation"
	CategoryFreeParty      Category = "FreeParty"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWedding, CategoryBirthdayParty, CategoryCorporateParty, CategoryGraduation, CategoryFreeParty:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// FixedTier returns the tier a category always uses regardless of what the
// client asks for.
func (c Category) FixedTier() (pricing.Tier, bool) {
	switch c {
	case CategoryBirthdayParty:
		return pricing.TierStandard, true
	case CategoryFreeParty:
		return pricing.TierNull, true
	}
	return "", false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}
