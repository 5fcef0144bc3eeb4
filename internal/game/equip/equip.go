// Package equip decides whether a creature can host an item on its body.
// Matching is pure tag-set subsumption: an item fits a part iff every
// required tag is present on the part and the part still functions.
package equip

import "github.com/greymarch/vitals/internal/model"

// CanEquip returns true if the body has at least one functional part
// satisfying the item's required tags.
func CanEquip(body *model.Body, item *model.ItemTemplate) bool {
	if body == nil || item == nil {
		return false
	}
	return body.CanEquip(item.RequiredTags)
}

// EligibleParts returns every functional part that can host the item, in kind
// enumeration order.
func EligibleParts(body *model.Body, item *model.ItemTemplate) []*model.BodyPart {
	if body == nil || item == nil {
		return nil
	}
	return body.PartsMatching(item.RequiredTags)
}

// ChooseTarget picks the part an equip action should land on: the
// least-damaged eligible part, ties broken by kind enumeration order.
// The policy is arbitrary but must stay deterministic: equip previews and
// the actual equip action have to agree on the slot.
func ChooseTarget(body *model.Body, item *model.ItemTemplate) (*model.BodyPart, bool) {
	candidates := EligibleParts(body, item)
	if len(candidates) == 0 {
		return nil, false
	}
	best := candidates[0]
	for _, p := range candidates[1:] {
		if p.DamageFraction() < best.DamageFraction() {
			best = p
		}
	}
	return best, true
}
