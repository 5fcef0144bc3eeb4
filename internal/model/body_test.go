package model

import (
	"slices"
	"testing"
)

// newTestBody builds a minimal three-part creature: vital torso, vital head,
// one grasp-capable hand. Enough to exercise every registry rule without
// pulling in the anatomy tables.
func newTestBody(t *testing.T) *Body {
	t.Helper()

	torso, err := NewBodyPart(KindTorso, "Torso", 1.0, 100, true, false, 0, NewTagSet("torso", "armor"))
	if err != nil {
		t.Fatalf("NewBodyPart(torso): %v", err)
	}
	head, err := NewBodyPart(KindHead, "Head", 0.5, 100, true, false, 0, NewTagSet("head", "armor"))
	if err != nil {
		t.Fatalf("NewBodyPart(head): %v", err)
	}
	hand, err := NewBodyPart(KindRightHand, "Right Hand", 0.167, 100, false, true, 0, NewTagSet("hand", "grasp", "hold", "right", "right_hand"))
	if err != nil {
		t.Fatalf("NewBodyPart(hand): %v", err)
	}

	body, err := NewBody(AnatomyHumanoid, map[BodyPartKind]*BodyPart{
		KindTorso:     torso,
		KindHead:      head,
		KindRightHand: hand,
	})
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	return body
}

func TestNewBody_Validation(t *testing.T) {
	if _, err := NewBody(AnatomyHumanoid, nil); err == nil {
		t.Error("NewBody with no parts must fail")
	}
	if _, err := NewBody(AnatomyHumanoid, map[BodyPartKind]*BodyPart{KindHead: nil}); err == nil {
		t.Error("NewBody with a nil part must fail")
	}

	head, err := NewBodyPart(KindHead, "Head", 0.5, 100, true, false, 0, NewTagSet())
	if err != nil {
		t.Fatalf("NewBodyPart: %v", err)
	}
	if _, err := NewBody(AnatomyHumanoid, map[BodyPartKind]*BodyPart{KindTorso: head}); err == nil {
		t.Error("NewBody with a mis-keyed part must fail")
	}
}

func TestBody_Part_UnknownKind(t *testing.T) {
	body := newTestBody(t)

	if _, ok := body.Part(KindLeftLeg); ok {
		t.Error("Part(LeftLeg) ok = true, want false (probing absent slots is normal)")
	}
	if p, ok := body.Part(KindTorso); !ok || p.Kind() != KindTorso {
		t.Error("Part(Torso) must return the torso")
	}
}

func TestBody_Parts_DefensiveCopy(t *testing.T) {
	body := newTestBody(t)

	snapshot := body.Parts()
	delete(snapshot, KindTorso)

	if _, ok := body.Part(KindTorso); !ok {
		t.Error("mutating the Parts() copy affected the registry")
	}
}

func TestBody_ApplyDamage(t *testing.T) {
	body := newTestBody(t)

	dealt, err := body.ApplyDamage(KindHead, 20)
	if err != nil {
		t.Fatalf("ApplyDamage: %v", err)
	}
	if dealt != 20 {
		t.Errorf("dealt = %d, want 20", dealt)
	}

	// Overkill clamps at zero and returns exactly the pre-call HP.
	head, _ := body.Part(KindHead)
	before := head.CurrentHP()
	dealt, err = body.ApplyDamage(KindHead, 9999)
	if err != nil {
		t.Fatalf("ApplyDamage: %v", err)
	}
	if dealt != before {
		t.Errorf("overkill dealt = %d, want %d", dealt, before)
	}
	if head.CurrentHP() != 0 {
		t.Errorf("CurrentHP() after overkill = %d, want 0", head.CurrentHP())
	}

	// Destroyed parts absorb nothing.
	dealt, err = body.ApplyDamage(KindHead, 10)
	if err != nil {
		t.Fatalf("ApplyDamage: %v", err)
	}
	if dealt != 0 {
		t.Errorf("damage to destroyed part = %d, want 0", dealt)
	}

	// Unknown kinds are a silent no-op.
	dealt, err = body.ApplyDamage(KindLeftLeg, 10)
	if err != nil || dealt != 0 {
		t.Errorf("damage to absent part = (%d, %v), want (0, nil)", dealt, err)
	}

	// Negative amounts are a caller bug.
	if _, err := body.ApplyDamage(KindTorso, -5); err == nil {
		t.Error("negative damage must fail fast")
	}
}

func TestBody_Heal(t *testing.T) {
	body := newTestBody(t)

	if _, err := body.ApplyDamage(KindTorso, 40); err != nil {
		t.Fatalf("ApplyDamage: %v", err)
	}

	healed, err := body.Heal(KindTorso, 25)
	if err != nil {
		t.Fatalf("Heal: %v", err)
	}
	if healed != 25 {
		t.Errorf("healed = %d, want 25", healed)
	}

	// Healing clamps at maxHP.
	healed, err = body.Heal(KindTorso, 9999)
	if err != nil {
		t.Fatalf("Heal: %v", err)
	}
	if healed != 15 {
		t.Errorf("overheal = %d, want 15 (remaining deficit)", healed)
	}
	torso, _ := body.Part(KindTorso)
	if torso.CurrentHP() != torso.MaxHP() {
		t.Errorf("CurrentHP() = %d, want maxHP %d", torso.CurrentHP(), torso.MaxHP())
	}

	// Healing a healthy part returns 0.
	healed, err = body.Heal(KindTorso, 10)
	if err != nil || healed != 0 {
		t.Errorf("healing healthy part = (%d, %v), want (0, nil)", healed, err)
	}

	if _, err := body.Heal(KindTorso, -1); err == nil {
		t.Error("negative heal must fail fast")
	}
}

func TestBody_HealAll(t *testing.T) {
	body := newTestBody(t)

	if _, err := body.ApplyDamage(KindTorso, 30); err != nil {
		t.Fatal(err)
	}
	if _, err := body.ApplyDamage(KindHead, 5); err != nil {
		t.Fatal(err)
	}

	healed, err := body.HealAll(10)
	if err != nil {
		t.Fatalf("HealAll: %v", err)
	}
	// Torso takes the full 10, head only its 5 deficit, hand nothing.
	if healed != 15 {
		t.Errorf("HealAll total = %d, want 15", healed)
	}

	if _, err := body.HealAll(-1); err == nil {
		t.Error("negative heal must fail fast")
	}
}

func TestBody_IsAlive(t *testing.T) {
	body := newTestBody(t)

	if !body.IsAlive() {
		t.Fatal("fresh body IsAlive() = false, want true")
	}

	// Destroying a limb never kills.
	if _, err := body.ApplyDamage(KindRightHand, 9999); err != nil {
		t.Fatal(err)
	}
	if !body.IsAlive() {
		t.Error("destroying a limb flipped IsAlive()")
	}

	// Destroying any vital part kills.
	if _, err := body.ApplyDamage(KindHead, 9999); err != nil {
		t.Fatal(err)
	}
	if body.IsAlive() {
		t.Error("IsAlive() = true with a destroyed vital part")
	}
}

func TestBody_FilteredViews(t *testing.T) {
	body := newTestBody(t)

	if got := len(body.VitalParts()); got != 2 {
		t.Errorf("VitalParts() count = %d, want 2", got)
	}
	if got := len(body.Limbs()); got != 1 {
		t.Errorf("Limbs() count = %d, want 1", got)
	}
	if got := len(body.DamagedParts()); got != 0 {
		t.Errorf("fresh DamagedParts() count = %d, want 0", got)
	}

	if _, err := body.ApplyDamage(KindTorso, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := body.ApplyDamage(KindRightHand, 9999); err != nil {
		t.Fatal(err)
	}

	if got := len(body.DamagedParts()); got != 2 {
		t.Errorf("DamagedParts() count = %d, want 2 (destroyed parts are damaged too)", got)
	}
	destroyed := body.DestroyedParts()
	if len(destroyed) != 1 || destroyed[0].Kind() != KindRightHand {
		t.Errorf("DestroyedParts() = %v, want just the hand", destroyed)
	}
}

func TestBody_PartsMatching(t *testing.T) {
	body := newTestBody(t)

	matches := body.PartsMatching(NewTagSet("grasp"))
	if len(matches) != 1 || matches[0].Kind() != KindRightHand {
		t.Fatalf("PartsMatching(grasp) = %v, want the hand", matches)
	}
	if !body.CanEquip(NewTagSet("grasp")) {
		t.Error("CanEquip(grasp) = false, want true")
	}

	// Destroyed parts never match.
	if _, err := body.ApplyDamage(KindRightHand, 9999); err != nil {
		t.Fatal(err)
	}
	if body.CanEquip(NewTagSet("grasp")) {
		t.Error("CanEquip(grasp) on destroyed hand = true, want false")
	}
	if body.CanManipulate() {
		t.Error("CanManipulate() with destroyed hand = true, want false")
	}
}

func TestBody_StatusReport(t *testing.T) {
	body := newTestBody(t)

	if got := body.StatusReport(); !slices.Equal(got, []string{fullHealthLine}) {
		t.Errorf("fresh StatusReport() = %v, want the full-health line", got)
	}

	if _, err := body.ApplyDamage(KindTorso, 10); err != nil { // 10% lost -> "damaged"
		t.Fatal(err)
	}
	if _, err := body.ApplyDamage(KindRightHand, 9999); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"Torso: damaged",
		"Right Hand: destroyed",
	}
	if got := body.StatusReport(); !slices.Equal(got, want) {
		t.Errorf("StatusReport() = %v, want %v", got, want)
	}
}

func TestBody_ApplyDamageRandom_ZeroDamageIsNoHit(t *testing.T) {
	body := newTestBody(t)

	part, err := body.ApplyDamageRandom(nil, 0)
	if err != nil {
		t.Fatalf("ApplyDamageRandom: %v", err)
	}
	if part != nil {
		t.Errorf("zero-damage draw returned part %s, want nil", part.Name())
	}

	if _, err := body.ApplyDamageRandom(nil, -1); err == nil {
		t.Error("negative damage must fail fast")
	}
}

func TestBody_ApplyDamageRandom_AllDestroyed(t *testing.T) {
	body := newTestBody(t)
	for kind := range body.Parts() {
		if _, err := body.ApplyDamage(kind, 9999); err != nil {
			t.Fatal(err)
		}
	}

	part, err := body.ApplyDamageRandom(nil, 10)
	if err != nil {
		t.Fatalf("ApplyDamageRandom: %v", err)
	}
	if part != nil {
		t.Errorf("draw over all-destroyed body returned %s, want nil", part.Name())
	}
}
