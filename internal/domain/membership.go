package domain

import "errors"

type Tier string

const (
	TierNone     Tier = "none"
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

var ErrInvalidPoints = errors.New("membership points must be non-negative")

// TierForPoints maps an accumulated membership point total to its tier.
// Thresholds are inclusive lower bounds.
func TierForPoints(points int) (Tier, error) {
	switch {
	case points >= 750:
		return TierDiamond, nil
	case points >= 500:
		return TierPlatinum, nil
	case points >= 250:
		return TierGold, nil
	case points >= 125:
		return TierSilver, nil
	case points >= 50:
		return TierBronze, nil
	case points >= 0:
		return TierNone, nil
	default:
		return "", ErrInvalidPoints
	}
}
