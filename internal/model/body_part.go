package model

import "fmt"

// BodyPart — одна анатомическая часть тела с независимым HP pool.
// MaxHP is sized from the owning creature's total HP at construction and
// never changes; each part is its own pool, the pools are not shared.
//
// A part is never removed from a body: severing is modeled as IsDestroyed
// (currentHP == 0), not deletion.
type BodyPart struct {
	kind       BodyPartKind
	name       string // display name ("Left Hand")
	maxHPRatio float64
	maxHP      int32
	currentHP  int32
	vital      bool // creature dies when this part is destroyed
	limb       bool // destruction costs function, not life
	protection int32
	tags       TagSet
	statuses   TagSet // free-form status effects ("bleeding", "burned"), orthogonal to HP
}

// NewBodyPart создаёт часть тела с валидацией.
// maxHP = floor(ratio × totalHP); the part starts at full HP.
// The tags set is owned by the part after this call; pass a fresh set per part.
func NewBodyPart(kind BodyPartKind, name string, ratio float64, totalHP int32, vital, limb bool, protection int32, tags TagSet) (*BodyPart, error) {
	if name == "" {
		return nil, fmt.Errorf("part name cannot be empty")
	}
	if ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("hp ratio must be in (0, 1], got %v", ratio)
	}
	if totalHP <= 0 {
		return nil, fmt.Errorf("total HP must be > 0, got %d", totalHP)
	}
	if protection < 0 {
		return nil, fmt.Errorf("natural protection cannot be negative, got %d", protection)
	}
	if tags == nil {
		tags = NewTagSet()
	}

	maxHP := int32(ratio * float64(totalHP))
	return &BodyPart{
		kind:       kind,
		name:       name,
		maxHPRatio: ratio,
		maxHP:      maxHP,
		currentHP:  maxHP,
		vital:      vital,
		limb:       limb,
		protection: protection,
		tags:       tags,
		statuses:   NewTagSet(),
	}, nil
}

// Kind возвращает анатомический слот части.
func (p *BodyPart) Kind() BodyPartKind {
	return p.kind
}

// Name возвращает display name ("Left Hand").
func (p *BodyPart) Name() string {
	return p.name
}

// MaxHPRatio returns the fraction of the creature's total HP this part was sized from.
func (p *BodyPart) MaxHPRatio() float64 {
	return p.maxHPRatio
}

// MaxHP возвращает максимальное HP части (fixed at creation).
func (p *BodyPart) MaxHP() int32 {
	return p.maxHP
}

// CurrentHP возвращает текущее HP части.
func (p *BodyPart) CurrentHP() int32 {
	return p.currentHP
}

// IsVital returns true if destroying this part kills the creature.
func (p *BodyPart) IsVital() bool {
	return p.vital
}

// IsLimb returns true if this part can be lost without killing the creature.
func (p *BodyPart) IsLimb() bool {
	return p.limb
}

// NaturalProtection returns the part's built-in armor value (chitin, hide).
func (p *BodyPart) NaturalProtection() int32 {
	return p.protection
}

// Tags returns the part's capability tag set.
func (p *BodyPart) Tags() TagSet {
	return p.tags
}

// IsDestroyed returns true when the part has no HP left.
func (p *BodyPart) IsDestroyed() bool {
	return p.currentHP == 0
}

// IsDamaged returns true when the part is below full HP.
func (p *BodyPart) IsDamaged() bool {
	return p.currentHP < p.maxHP
}

// DamageFraction возвращает долю потерянного HP (0.0 - 1.0).
// A part with maxHP == 0 counts as fully destroyed.
func (p *BodyPart) DamageFraction() float64 {
	if p.maxHP == 0 {
		return 1.0
	}
	return 1.0 - float64(p.currentHP)/float64(p.maxHP)
}

// Tier bands the part's damage fraction into a display tier.
// Computed in integer arithmetic so the 0.25/0.5/0.75 boundaries are exact.
func (p *BodyPart) Tier() DamageTier {
	if p.maxHP == 0 || p.currentHP == 0 {
		return TierDestroyed
	}
	dmg := p.maxHP - p.currentHP
	switch {
	case dmg == 0:
		return TierHealthy
	case dmg*4 <= p.maxHP:
		return TierDamaged
	case dmg*2 <= p.maxHP:
		return TierWounded
	case dmg*4 <= p.maxHP*3:
		return TierBadlyWounded
	default:
		return TierSeverelyWounded
	}
}

// AddStatus applies a free-form status effect ("bleeding").
func (p *BodyPart) AddStatus(status string) {
	p.statuses.Add(status)
}

// RemoveStatus clears a status effect (no-op if absent).
func (p *BodyPart) RemoveStatus(status string) {
	p.statuses.Remove(status)
}

// HasStatus returns true if the status effect is active on this part.
func (p *BodyPart) HasStatus(status string) bool {
	return p.statuses.Has(status)
}

// Statuses returns the active status effects, sorted.
func (p *BodyPart) Statuses() []string {
	return p.statuses.Values()
}

// reduce lowers currentHP by up to amount and returns the actual reduction.
// Already-destroyed parts absorb nothing.
func (p *BodyPart) reduce(amount int32) int32 {
	dealt := min(amount, p.currentHP)
	p.currentHP -= dealt
	return dealt
}

// restore raises currentHP by up to amount (clamped at maxHP) and returns
// the actual amount healed.
func (p *BodyPart) restore(amount int32) int32 {
	healed := min(amount, p.maxHP-p.currentHP)
	p.currentHP += healed
	return healed
}
