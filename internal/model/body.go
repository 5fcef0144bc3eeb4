package model

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
)

// Body — реестр частей тела одного существа.
// Owns the kind → part mapping exclusively: parts are never shared between
// bodies and the part set is fixed for the body's lifetime.
//
// Single-threaded by contract: a body belongs to exactly one entity and is
// only touched by the turn that owns the entity, so there is no internal
// locking. Liveness, penalties and the rest of the derived state are always
// recomputed from part HP, never cached.
type Body struct {
	variant AnatomyVariant
	parts   map[BodyPartKind]*BodyPart
}

// fullHealthLine is the single StatusReport line for an undamaged body.
const fullHealthLine = "all body parts healthy"

// NewBody создаёт Body из уже построенного part mapping.
// Use data.NewBody to build one from an anatomy variant and a total HP budget.
func NewBody(variant AnatomyVariant, parts map[BodyPartKind]*BodyPart) (*Body, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("body must have at least one part")
	}
	for kind, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("nil part for kind %s", kind)
		}
		if p.Kind() != kind {
			return nil, fmt.Errorf("part keyed as %s has kind %s", kind, p.Kind())
		}
	}
	return &Body{variant: variant, parts: parts}, nil
}

// Variant returns the anatomy layout this body was built from.
func (b *Body) Variant() AnatomyVariant {
	return b.variant
}

// Part возвращает часть тела по kind (ok == false если такого слота нет).
// Callers routinely probe slots the anatomy does not have (a slime has no
// legs), so a missing kind is a normal lookup miss, not an error.
func (b *Body) Part(kind BodyPartKind) (*BodyPart, bool) {
	p, ok := b.parts[kind]
	return p, ok
}

// Parts returns a copy of the kind → part mapping. Mutating the returned map
// does not affect the body; the parts themselves are the live instances.
func (b *Body) Parts() map[BodyPartKind]*BodyPart {
	return maps.Clone(b.parts)
}

// sorted returns all parts in kind enumeration order (stable iteration for
// reports, matching and weighted draws).
func (b *Body) sorted() []*BodyPart {
	kinds := slices.Sorted(maps.Keys(b.parts))
	out := make([]*BodyPart, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, b.parts[k])
	}
	return out
}

// filter returns the parts satisfying keep, in kind enumeration order.
func (b *Body) filter(keep func(*BodyPart) bool) []*BodyPart {
	var out []*BodyPart
	for _, p := range b.sorted() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// VitalParts returns the parts whose destruction kills the creature.
func (b *Body) VitalParts() []*BodyPart {
	return b.filter((*BodyPart).IsVital)
}

// Limbs returns the non-vital, function-bearing parts.
func (b *Body) Limbs() []*BodyPart {
	return b.filter((*BodyPart).IsLimb)
}

// DamagedParts returns the parts below full HP (including destroyed ones).
func (b *Body) DamagedParts() []*BodyPart {
	return b.filter((*BodyPart).IsDamaged)
}

// DestroyedParts returns the parts reduced to zero HP.
func (b *Body) DestroyedParts() []*BodyPart {
	return b.filter((*BodyPart).IsDestroyed)
}

// PartsMatching returns the non-destroyed parts whose tag set satisfies every
// required tag. A destroyed hand cannot hold anything no matter its tags.
func (b *Body) PartsMatching(required TagSet) []*BodyPart {
	return b.filter(func(p *BodyPart) bool {
		return !p.IsDestroyed() && p.Tags().ContainsAll(required)
	})
}

// CanEquip returns true if at least one functional part satisfies the
// required tags.
func (b *Body) CanEquip(required TagSet) bool {
	return len(b.PartsMatching(required)) > 0
}

// IsAlive returns true while no vital part is destroyed.
func (b *Body) IsAlive() bool {
	for _, p := range b.parts {
		if p.IsVital() && p.IsDestroyed() {
			return false
		}
	}
	return true
}

// CanMove проверяет может ли существо передвигаться.
// Simple anatomies move on the torso; everything else needs at least one
// functional leg or foot.
func (b *Body) CanMove() bool {
	if b.variant == AnatomySimple {
		torso, ok := b.parts[KindTorso]
		return ok && !torso.IsDestroyed()
	}
	for _, kind := range locomotionKinds {
		if p, ok := b.parts[kind]; ok && !p.IsDestroyed() {
			return true
		}
	}
	return false
}

// CanManipulate returns true if any grasp-capable part is still functional.
func (b *Body) CanManipulate() bool {
	return b.CanEquip(NewTagSet("grasp"))
}

// penaltyOver computes 1 - functional/total over the parts of the given kinds
// that this anatomy actually has. No such parts means no penalty.
func (b *Body) penaltyOver(kinds []BodyPartKind) float64 {
	total, functional := 0, 0
	for _, kind := range kinds {
		p, ok := b.parts[kind]
		if !ok {
			continue
		}
		total++
		if !p.IsDestroyed() {
			functional++
		}
	}
	if total == 0 {
		return 0
	}
	return 1.0 - float64(functional)/float64(total)
}

// MovementPenalty возвращает штраф передвижения (0.0 - 1.0).
// Simple anatomies degrade smoothly with torso damage; jointed anatomies lose
// a share per destroyed leg or foot.
func (b *Body) MovementPenalty() float64 {
	if b.variant == AnatomySimple {
		if torso, ok := b.parts[KindTorso]; ok {
			return torso.DamageFraction()
		}
		return 0
	}
	return b.penaltyOver(locomotionKinds)
}

// ManipulationPenalty возвращает штраф манипуляции (0.0 - 1.0).
// Computed over arms and hands; anatomies without either have no penalty.
func (b *Body) ManipulationPenalty() float64 {
	if b.variant == AnatomySimple {
		return 0
	}
	return b.penaltyOver(manipulationKinds)
}

// StatusReport returns one display line per damaged or destroyed part, in
// kind enumeration order, or a single full-health line.
func (b *Body) StatusReport() []string {
	var lines []string
	for _, p := range b.sorted() {
		switch {
		case p.IsDestroyed():
			lines = append(lines, fmt.Sprintf("%s: destroyed", p.Name()))
		case p.IsDamaged():
			lines = append(lines, fmt.Sprintf("%s: %s", p.Name(), p.Tier()))
		}
	}
	if len(lines) == 0 {
		return []string{fullHealthLine}
	}
	return lines
}

// ApplyDamage наносит урон указанной части.
// Returns the actual HP reduction: 0 for an unknown kind or an
// already-destroyed part. Negative amounts are a caller bug and fail fast.
func (b *Body) ApplyDamage(kind BodyPartKind, amount int32) (int32, error) {
	if amount < 0 {
		return 0, fmt.Errorf("damage amount cannot be negative, got %d", amount)
	}
	p, ok := b.parts[kind]
	if !ok || p.IsDestroyed() {
		return 0, nil
	}
	return p.reduce(amount), nil
}

// RandomTarget picks a non-destroyed part with a weighted draw: the torso is
// hit most often, the head least, limbs in between. Returns ok == false when
// every part is already destroyed. Pass a seeded *rand.Rand for reproducible
// draws; a nil rnd uses the process-wide source.
func (b *Body) RandomTarget(rnd *rand.Rand) (*BodyPart, bool) {
	candidates := b.filter(func(p *BodyPart) bool { return !p.IsDestroyed() })
	if len(candidates) == 0 {
		return nil, false
	}

	// Cumulative weights + one uniform draw over the total.
	cumulative := make([]int32, len(candidates))
	var total int32
	for i, p := range candidates {
		total += targetWeight(p)
		cumulative[i] = total
	}

	var roll int32
	if rnd != nil {
		roll = rnd.Int32N(total)
	} else {
		roll = rand.Int32N(total)
	}
	for i, bound := range cumulative {
		if roll < bound {
			return candidates[i], true
		}
	}
	return candidates[len(candidates)-1], true
}

// targetWeight returns the relative hit weight of a part.
func targetWeight(p *BodyPart) int32 {
	switch {
	case p.Kind() == KindTorso:
		return 30
	case p.Kind() == KindHead:
		return 10
	case p.IsLimb():
		return 15
	default:
		return 20
	}
}

// ApplyDamageRandom наносит урон случайной части (weighted draw).
// Returns the struck part, or nil when nothing was hit: either every part is
// already destroyed, or the draw landed but dealt zero damage. A zero-damage
// hit is not a hit as far as callers are concerned.
func (b *Body) ApplyDamageRandom(rnd *rand.Rand, amount int32) (*BodyPart, error) {
	if amount < 0 {
		return nil, fmt.Errorf("damage amount cannot be negative, got %d", amount)
	}
	target, ok := b.RandomTarget(rnd)
	if !ok {
		return nil, nil
	}
	if target.reduce(amount) == 0 {
		return nil, nil
	}
	return target, nil
}

// Heal восстанавливает HP указанной части (clamped at maxHP).
// Returns the actual amount healed: 0 for an unknown kind or a part already
// at full HP. Negative amounts fail fast.
func (b *Body) Heal(kind BodyPartKind, amount int32) (int32, error) {
	if amount < 0 {
		return 0, fmt.Errorf("heal amount cannot be negative, got %d", amount)
	}
	p, ok := b.parts[kind]
	if !ok {
		return 0, nil
	}
	return p.restore(amount), nil
}

// HealAll восстанавливает HP всем частям (amount на каждую часть).
// Returns the total amount healed across the body.
func (b *Body) HealAll(amountPerPart int32) (int32, error) {
	if amountPerPart < 0 {
		return 0, fmt.Errorf("heal amount cannot be negative, got %d", amountPerPart)
	}
	var total int32
	for _, p := range b.parts {
		total += p.restore(amountPerPart)
	}
	return total, nil
}
