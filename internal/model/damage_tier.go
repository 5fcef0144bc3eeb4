package model

// DamageTier — discrete banding of a part's remaining HP into a display label.
// The banding is expressed on the damage fraction f = 1 - currentHP/maxHP:
//
//	healthy          f == 0
//	damaged          f in (0, 0.25]
//	wounded          f in (0.25, 0.5]
//	badly wounded    f in (0.5, 0.75]
//	severely wounded f in (0.75, 1)
//	destroyed        f == 1
//
// Yes, "damaged" is the LIGHTEST of the damaged tiers. The labels are part of
// the display contract; do not rename them.
type DamageTier int32

const (
	TierHealthy DamageTier = iota
	TierDamaged
	TierWounded
	TierBadlyWounded
	TierSeverelyWounded
	TierDestroyed
)

// String returns the display label for the tier.
func (t DamageTier) String() string {
	switch t {
	case TierHealthy:
		return "healthy"
	case TierDamaged:
		return "damaged"
	case TierWounded:
		return "wounded"
	case TierBadlyWounded:
		return "badly wounded"
	case TierSeverelyWounded:
		return "severely wounded"
	case TierDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
