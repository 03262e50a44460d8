package pricing

// Per-guest rates for each optional service. Tiers that are missing from a
// table (General, LuxoPremier) price as zero.
var (
	tableRates = map[Tier]float64{
		TierNull:     0,
		TierStandard: 50,
		TierLuxo:     75,
		TierPremier:  100,
	}

	decorationRates = map[Tier]float64{
		TierNull:     0,
		TierStandard: 50,
		TierLuxo:     75,
		TierPremier:  100,
	}

	cakeRates = map[Tier]float64{
		TierNull:     0,
		TierStandard: 10,
		TierLuxo:     15,
		TierPremier:  20,
	}

	musicRates = map[Tier]float64{
		TierNull:     0,
		TierStandard: 20,
		TierLuxo:     25,
		TierPremier:  30,
	}

	foodRates = map[Tier]float64{
		TierNull:     0,
		TierStandard: 40,
		TierLuxo:     48,
		TierPremier:  60,
	}

	// Number of food items a client must pick per tier. Null has no allowance.
	foodAllowance = map[Tier]int{
		TierStandard: 4,
		TierLuxo:     5,
		TierPremier:  6,
	}
)

func TableCost(guests int, tier Tier) float64 {
	return float64(guests) * tableRates[tier]
}

func DecorationCost(guests int, tier Tier) float64 {
	return float64(guests) * decorationRates[tier]
}

func CakeCost(guests int, tier Tier) float64 {
	return float64(guests) * cakeRates[tier]
}

func MusicCost(guests int, tier Tier) float64 {
	return float64(guests) * musicRates[tier]
}

// FoodRate returns the per-guest food price for a tier.
func FoodRate(tier Tier) float64 {
	return foodRates[tier]
}

// FoodAllowance returns how many food items an event of the given tier must
// choose. The second value is false when the tier does not restrict the count.
func FoodAllowance(tier Tier) (int, bool) {
	n, ok := foodAllowance[tier]
	return n, ok
}
