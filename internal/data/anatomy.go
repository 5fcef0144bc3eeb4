package data

import (
	"fmt"
	"slices"

	"github.com/greymarch/vitals/internal/model"
)

// partSpec is one row of an anatomy template: everything needed to build one
// body part except the creature's total HP budget.
type partSpec struct {
	kind       model.BodyPartKind
	name       string
	ratio      float64
	vital      bool
	limb       bool
	protection int32
	tags       []string
}

// anatomyTable stores the part layout per anatomy variant.
// Adding a creature shape is adding rows here; the builder is generic.
//
// Ratios are fractions of the creature's TOTAL HP and deliberately sum to
// more than 1.0: every part is its own pool sized relative to overall
// toughness, there is no shared pool to distribute.
var anatomyTable map[model.AnatomyVariant][]partSpec

func init() {
	anatomyTable = map[model.AnatomyVariant][]partSpec{
		model.AnatomyHumanoid: {
			{kind: model.KindHead, name: "Head", ratio: 0.5, vital: true, tags: []string{"head", "armor"}},
			{kind: model.KindNeck, name: "Neck", ratio: 0.267, vital: true, tags: []string{"neck", "armor"}},
			{kind: model.KindTorso, name: "Torso", ratio: 1.0, vital: true, tags: []string{"torso", "armor"}},
			{kind: model.KindLeftArm, name: "Left Arm", ratio: 0.4, limb: true, tags: []string{"arm", "armor", "left", "left_arm"}},
			{kind: model.KindRightArm, name: "Right Arm", ratio: 0.4, limb: true, tags: []string{"arm", "armor", "right", "right_arm"}},
			{kind: model.KindLeftHand, name: "Left Hand", ratio: 0.167, limb: true, tags: []string{"hand", "armor", "grasp", "manipulate", "hold", "use", "left", "left_hand"}},
			{kind: model.KindRightHand, name: "Right Hand", ratio: 0.167, limb: true, tags: []string{"hand", "armor", "grasp", "manipulate", "hold", "use", "right", "right_hand"}},
			{kind: model.KindLeftLeg, name: "Left Leg", ratio: 0.5, limb: true, tags: []string{"leg", "armor", "left", "left_leg"}},
			{kind: model.KindRightLeg, name: "Right Leg", ratio: 0.5, limb: true, tags: []string{"leg", "armor", "right", "right_leg"}},
			{kind: model.KindLeftFoot, name: "Left Foot", ratio: 0.2, limb: true, tags: []string{"foot", "armor", "left", "left_foot"}},
			{kind: model.KindRightFoot, name: "Right Foot", ratio: 0.2, limb: true, tags: []string{"foot", "armor", "right", "right_foot"}},
		},
		model.AnatomySimple: {
			{kind: model.KindTorso, name: "Body", ratio: 1.0, vital: true, protection: 1, tags: []string{"torso", "armor"}},
		},
		model.AnatomyQuadruped: {
			{kind: model.KindHead, name: "Head", ratio: 0.4, vital: true, tags: []string{"head", "armor"}},
			{kind: model.KindNeck, name: "Neck", ratio: 0.25, vital: true, tags: []string{"neck", "armor"}},
			{kind: model.KindTorso, name: "Torso", ratio: 1.0, vital: true, tags: []string{"torso", "armor"}},
			{kind: model.KindLeftLeg, name: "Left Leg", ratio: 0.45, limb: true, tags: []string{"leg", "armor", "left", "left_leg"}},
			{kind: model.KindRightLeg, name: "Right Leg", ratio: 0.45, limb: true, tags: []string{"leg", "armor", "right", "right_leg"}},
			{kind: model.KindLeftFoot, name: "Left Foot", ratio: 0.18, limb: true, tags: []string{"foot", "armor", "left", "left_foot"}},
			{kind: model.KindRightFoot, name: "Right Foot", ratio: 0.18, limb: true, tags: []string{"foot", "armor", "right", "right_foot"}},
			{kind: model.KindTail, name: "Tail", ratio: 0.15, limb: true, tags: []string{"tail"}},
		},
		model.AnatomyAvian: {
			{kind: model.KindHead, name: "Head", ratio: 0.35, vital: true, tags: []string{"head", "armor"}},
			{kind: model.KindNeck, name: "Neck", ratio: 0.2, vital: true, tags: []string{"neck", "armor"}},
			{kind: model.KindTorso, name: "Torso", ratio: 1.0, vital: true, tags: []string{"torso", "armor"}},
			{kind: model.KindLeftLeg, name: "Left Leg", ratio: 0.3, limb: true, tags: []string{"leg", "armor", "left", "left_leg"}},
			{kind: model.KindRightLeg, name: "Right Leg", ratio: 0.3, limb: true, tags: []string{"leg", "armor", "right", "right_leg"}},
			{kind: model.KindLeftFoot, name: "Left Foot", ratio: 0.12, limb: true, tags: []string{"foot", "armor", "left", "left_foot"}},
			{kind: model.KindRightFoot, name: "Right Foot", ratio: 0.12, limb: true, tags: []string{"foot", "armor", "right", "right_foot"}},
			{kind: model.KindWings, name: "Wings", ratio: 0.4, limb: true, tags: []string{"wing", "armor"}},
			{kind: model.KindTail, name: "Tail Feathers", ratio: 0.1, limb: true, tags: []string{"tail"}},
		},
		model.AnatomyInsectoid: {
			{kind: model.KindHead, name: "Head", ratio: 0.45, vital: true, protection: 1, tags: []string{"head", "armor"}},
			{kind: model.KindTorso, name: "Carapace", ratio: 1.0, vital: true, protection: 2, tags: []string{"torso", "armor"}},
			{kind: model.KindLeftLeg, name: "Left Legs", ratio: 0.3, limb: true, tags: []string{"leg", "left", "left_leg"}},
			{kind: model.KindRightLeg, name: "Right Legs", ratio: 0.3, limb: true, tags: []string{"leg", "right", "right_leg"}},
			{kind: model.KindAntenna, name: "Antennae", ratio: 0.1, limb: true, tags: []string{"antenna"}},
			{kind: model.KindMandibles, name: "Mandibles", ratio: 0.25, limb: true, tags: []string{"mandible", "grasp", "hold"}},
		},
	}
}

// Build создаёт part mapping для указанного anatomy variant.
// Pure and deterministic: same inputs, same parts. Every part gets freshly
// allocated tag and status containers; two parts never share storage.
//
// Returns error (and no partial mapping) on totalHP <= 0 or unknown variant.
func Build(variant model.AnatomyVariant, totalHP int32) (map[model.BodyPartKind]*model.BodyPart, error) {
	if totalHP <= 0 {
		return nil, fmt.Errorf("total HP must be > 0, got %d", totalHP)
	}
	specs, ok := anatomyTable[variant]
	if !ok {
		return nil, fmt.Errorf("unknown anatomy variant: %d", variant)
	}

	parts := make(map[model.BodyPartKind]*model.BodyPart, len(specs))
	for _, s := range specs {
		p, err := model.NewBodyPart(s.kind, s.name, s.ratio, totalHP, s.vital, s.limb, s.protection, model.NewTagSet(s.tags...))
		if err != nil {
			return nil, fmt.Errorf("building %s part %s: %w", variant, s.name, err)
		}
		parts[s.kind] = p
	}
	return parts, nil
}

// NewBody создаёт Body для существа: anatomy variant + total HP budget.
// This is the spawn-time entry point; the body then lives as long as the
// creature does.
func NewBody(variant model.AnatomyVariant, totalHP int32) (*model.Body, error) {
	parts, err := Build(variant, totalHP)
	if err != nil {
		return nil, err
	}
	return model.NewBody(variant, parts)
}

// Variants returns the anatomy variants the table knows about.
func Variants() []model.AnatomyVariant {
	out := make([]model.AnatomyVariant, 0, len(anatomyTable))
	for v := range anatomyTable {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
