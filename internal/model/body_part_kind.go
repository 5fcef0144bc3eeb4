package model

// BodyPartKind определяет анатомический слот существа.
// Closed enum: parts are identified by kind, one instance per kind per body.
type BodyPartKind int32

const (
	KindHead BodyPartKind = iota
	KindNeck
	KindTorso
	KindLeftArm
	KindRightArm
	KindLeftHand
	KindRightHand
	KindLeftLeg
	KindRightLeg
	KindLeftFoot
	KindRightFoot
	KindTail
	KindWings
	KindAntenna
	KindMandibles
)

// String returns human-readable body part kind name.
func (k BodyPartKind) String() string {
	switch k {
	case KindHead:
		return "Head"
	case KindNeck:
		return "Neck"
	case KindTorso:
		return "Torso"
	case KindLeftArm:
		return "LeftArm"
	case KindRightArm:
		return "RightArm"
	case KindLeftHand:
		return "LeftHand"
	case KindRightHand:
		return "RightHand"
	case KindLeftLeg:
		return "LeftLeg"
	case KindRightLeg:
		return "RightLeg"
	case KindLeftFoot:
		return "LeftFoot"
	case KindRightFoot:
		return "RightFoot"
	case KindTail:
		return "Tail"
	case KindWings:
		return "Wings"
	case KindAntenna:
		return "Antenna"
	case KindMandibles:
		return "Mandibles"
	default:
		return "Unknown"
	}
}

// locomotionKinds are the slots that carry the body: penalties and CanMove
// are computed over whichever of these the anatomy actually has.
var locomotionKinds = []BodyPartKind{KindLeftLeg, KindRightLeg, KindLeftFoot, KindRightFoot}

// manipulationKinds are the slots used for holding and fine work.
var manipulationKinds = []BodyPartKind{KindLeftArm, KindRightArm, KindLeftHand, KindRightHand}
