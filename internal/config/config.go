package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the body simulator.
type Simulator struct {
	LogLevel string `yaml:"log_level"`
	Seed     int64  `yaml:"seed"`

	// Simulation shape
	Rounds      int   `yaml:"rounds"`
	StrikePower int32 `yaml:"strike_power"`

	Fighters []FighterSpec `yaml:"fighters"`
	Items    []ItemSpec    `yaml:"items"`
}

// FighterSpec describes one simulated creature.
type FighterSpec struct {
	Name    string `yaml:"name"`
	Anatomy string `yaml:"anatomy"` // "humanoid", "simple", "quadruped", "avian", "insectoid"
	TotalHP int32  `yaml:"total_hp"`
}

// ItemSpec describes one item checked for equip eligibility after the fight.
type ItemSpec struct {
	Name         string   `yaml:"name"`
	Type         string   `yaml:"type"` // "weapon", "armor", "accessory"
	Power        int32    `yaml:"power"`
	Defense      int32    `yaml:"defense"`
	RequiredTags []string `yaml:"required_tags"`
}

// DefaultSimulator returns Simulator config with a playable default roster.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:    "info",
		Seed:        1,
		Rounds:      20,
		StrikePower: 12,
		Fighters: []FighterSpec{
			{Name: "Mercenary", Anatomy: "humanoid", TotalHP: 100},
			{Name: "Gray Slime", Anatomy: "simple", TotalHP: 50},
			{Name: "Dire Wolf", Anatomy: "quadruped", TotalHP: 80},
			{Name: "Carrion Hawk", Anatomy: "avian", TotalHP: 60},
			{Name: "Tomb Beetle", Anatomy: "insectoid", TotalHP: 70},
		},
		Items: []ItemSpec{
			{Name: "Short Sword", Type: "weapon", Power: 8, RequiredTags: []string{"hand", "grasp"}},
			{Name: "Leather Helm", Type: "armor", Defense: 3, RequiredTags: []string{"head", "armor"}},
			{Name: "Iron Boots", Type: "armor", Defense: 2, RequiredTags: []string{"foot", "armor"}},
			{Name: "Bone Amulet", Type: "accessory", RequiredTags: []string{"neck"}},
		},
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults. The loaded config is validated.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the structural invariants the simulator relies on.
// Anatomy and item type strings are parsed later, at build time, which keeps
// the config package free of model imports.
func (c Simulator) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be > 0, got %d", c.Rounds)
	}
	if c.StrikePower < 0 {
		return fmt.Errorf("strike_power cannot be negative, got %d", c.StrikePower)
	}
	if len(c.Fighters) == 0 {
		return fmt.Errorf("at least one fighter is required")
	}
	for i, f := range c.Fighters {
		if f.Name == "" {
			return fmt.Errorf("fighter %d: name is required", i)
		}
		if f.Anatomy == "" {
			return fmt.Errorf("fighter %q: anatomy is required", f.Name)
		}
		if f.TotalHP <= 0 {
			return fmt.Errorf("fighter %q: total_hp must be > 0, got %d", f.Name, f.TotalHP)
		}
	}
	for i, it := range c.Items {
		if it.Name == "" {
			return fmt.Errorf("item %d: name is required", i)
		}
		if len(it.RequiredTags) == 0 {
			return fmt.Errorf("item %q: required_tags cannot be empty", it.Name)
		}
	}
	return nil
}
