package model

// ItemTemplate — шаблон предмета (weapon, armor, accessory).
// Owned by the equipment system; the body core only reads RequiredTags to
// answer "can this creature host the item somewhere".
type ItemTemplate struct {
	ID   int32
	Name string
	Type EquipmentType

	PowerBonus   int32 // attack power added while wielded
	DefenseBonus int32 // defense added while worn

	// RequiredTags must all be present on a functional body part for the
	// item to be equippable there ({"hand", "grasp"} for a sword,
	// {"head", "armor"} for a helmet).
	RequiredTags TagSet
}

// EquipmentType определяет категорию предмета.
type EquipmentType int32

const (
	EquipWeapon EquipmentType = iota
	EquipArmor
	EquipAccessory
)

// String returns human-readable equipment type name.
func (t EquipmentType) String() string {
	switch t {
	case EquipWeapon:
		return "Weapon"
	case EquipArmor:
		return "Armor"
	case EquipAccessory:
		return "Accessory"
	default:
		return "Unknown"
	}
}

// ParseEquipmentType converts a config string into an EquipmentType.
func ParseEquipmentType(s string) (EquipmentType, bool) {
	switch s {
	case "weapon":
		return EquipWeapon, true
	case "armor":
		return EquipArmor, true
	case "accessory":
		return EquipAccessory, true
	default:
		return 0, false
	}
}
