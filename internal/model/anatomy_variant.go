package model

import "fmt"

// AnatomyVariant выбирает layout тела (набор частей + ratios + flags).
// The part tables themselves live in internal/data.
type AnatomyVariant int32

const (
	AnatomyHumanoid AnatomyVariant = iota
	AnatomySimple
	AnatomyQuadruped
	AnatomyAvian
	AnatomyInsectoid
)

// String returns human-readable anatomy variant name.
func (v AnatomyVariant) String() string {
	switch v {
	case AnatomyHumanoid:
		return "humanoid"
	case AnatomySimple:
		return "simple"
	case AnatomyQuadruped:
		return "quadruped"
	case AnatomyAvian:
		return "avian"
	case AnatomyInsectoid:
		return "insectoid"
	default:
		return "unknown"
	}
}

// ParseAnatomyVariant converts a config string ("humanoid", "simple", ...)
// into an AnatomyVariant.
func ParseAnatomyVariant(s string) (AnatomyVariant, error) {
	switch s {
	case "humanoid":
		return AnatomyHumanoid, nil
	case "simple":
		return AnatomySimple, nil
	case "quadruped":
		return AnatomyQuadruped, nil
	case "avian":
		return AnatomyAvian, nil
	case "insectoid":
		return AnatomyInsectoid, nil
	default:
		return 0, fmt.Errorf("unknown anatomy variant: %q", s)
	}
}
