// Package combat resolves simulated strikes against a creature's body.
// It does not decide whether an attack hits or what a weapon deals. It rolls
// variance on an already-decided base amount, picks the struck part with the
// body's weighted draw, and lets natural protection absorb its share.
package combat

import (
	"fmt"
	"math/rand/v2"

	"github.com/greymarch/vitals/internal/model"
)

// DamageVariance is the ± percentage applied to the base amount of a strike.
const DamageVariance int32 = 20

// Roll returns base adjusted by a uniform ±variancePct% multiplier.
// A non-positive base rolls to 0.
func Roll(rnd *rand.Rand, base, variancePct int32) int32 {
	if base <= 0 {
		return 0
	}
	if variancePct <= 0 {
		return base
	}
	// Integer arithmetic keeps the ±variance bounds exact.
	spread := rnd.Int32N(2*variancePct+1) - variancePct // -v..+v
	return base + base*spread/100
}

// Strike rolls damage around power, picks a struck part on the defender and
// applies the net amount after the part's natural protection.
// Returns the struck part and the HP actually removed; a fully absorbed or
// fully missed strike returns a nil part, same as Body.ApplyDamageRandom.
func Strike(rnd *rand.Rand, power int32, defender *model.Body) (*model.BodyPart, int32, error) {
	if power < 0 {
		return nil, 0, fmt.Errorf("strike power cannot be negative, got %d", power)
	}

	target, ok := defender.RandomTarget(rnd)
	if !ok {
		return nil, 0, nil
	}

	net := Roll(rnd, power, DamageVariance) - target.NaturalProtection()
	if net < 0 {
		net = 0
	}
	dealt, err := defender.ApplyDamage(target.Kind(), net)
	if err != nil {
		return nil, 0, err
	}
	if dealt == 0 {
		return nil, 0, nil
	}
	return target, dealt, nil
}
