package model

import "fmt"

// Training limits.
const (
	MinLevel   = 1
	MaxLevel   = 100
	MaxIV      = 31
	MaxEV      = 252
	MaxEVTotal = 510
	MaxTypes   = 2

	MaxBaseStat = 255
	MaxPower    = 255
)

// Combatant is an immutable description of one side of an exchange.
// Nature is kept as a name and resolved through the nature table.
type Combatant struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Types   []Type  `json:"types" yaml:"types"`
	Base    StatSet `json:"baseStats" yaml:"base_stats"`
	Level   int     `json:"level" yaml:"level"`
	Nature  string  `json:"nature" yaml:"nature"`
	Ability string  `json:"ability,omitempty" yaml:"ability"`
	Item    string  `json:"item,omitempty" yaml:"item"`
	IVs     StatSet `json:"ivs" yaml:"ivs"`
	EVs     StatSet `json:"evs" yaml:"evs"`
}

// DisplayName returns Name, falling back to ID.
func (c Combatant) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// HasType reports whether t is one of the combatant's types.
func (c Combatant) HasType(t Type) bool {
	for _, own := range c.Types {
		if own == t {
			return true
		}
	}
	return false
}

// Validate checks level, type count, base stats, IVs and EVs.
// The first violation is returned as *ValidationError.
func (c Combatant) Validate() error {
	if c.Level < MinLevel || c.Level > MaxLevel {
		return &ValidationError{Field: "level", Value: c.Level, Reason: fmt.Sprintf("must be in [%d, %d]", MinLevel, MaxLevel)}
	}
	if err := ValidateTypes(c.Types); err != nil {
		return err
	}
	for i := Stat(0); i < StatCount; i++ {
		if v := c.Base.Get(i); v <= 0 || v > MaxBaseStat {
			return &ValidationError{Field: "baseStats." + i.String(), Value: v, Reason: fmt.Sprintf("must be in [1, %d]", MaxBaseStat)}
		}
	}
	for i := Stat(0); i < StatCount; i++ {
		if v := c.IVs.Get(i); v < 0 || v > MaxIV {
			return &ValidationError{Field: "ivs." + i.String(), Value: v, Reason: fmt.Sprintf("must be in [0, %d]", MaxIV)}
		}
	}
	for i := Stat(0); i < StatCount; i++ {
		if v := c.EVs.Get(i); v < 0 || v > MaxEV {
			return &ValidationError{Field: "evs." + i.String(), Value: v, Reason: fmt.Sprintf("must be in [0, %d]", MaxEV)}
		}
	}
	if sum := c.EVs.Sum(); sum > MaxEVTotal {
		return &ValidationError{Field: "evs", Value: sum, Reason: fmt.Sprintf("total must not exceed %d", MaxEVTotal)}
	}
	return nil
}

// ValidateTypes checks that a type list has one or two known, distinct types.
func ValidateTypes(types []Type) error {
	if len(types) == 0 || len(types) > MaxTypes {
		return &ValidationError{Field: "types", Value: len(types), Reason: "must have 1 or 2 types"}
	}
	for _, t := range types {
		if !t.Valid() {
			return &UnknownTypeError{Name: fmt.Sprintf("#%d", t)}
		}
	}
	if len(types) == 2 && types[0] == types[1] {
		return &ValidationError{Field: "types", Value: types[0].String(), Reason: "duplicate type"}
	}
	return nil
}

// Move is an immutable move description. Power 0 marks a non-damaging move.
// Accuracy is carried for display only.
type Move struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Power    int      `json:"power" yaml:"power"`
	Type     Type     `json:"type" yaml:"type"`
	Category Category `json:"category" yaml:"category"`
	Accuracy int      `json:"accuracy" yaml:"accuracy"`
}

// DisplayName returns Name, falling back to ID.
func (m Move) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Validate checks power, type and accuracy ranges.
func (m Move) Validate() error {
	if m.Power < 0 || m.Power > MaxPower {
		return &ValidationError{Field: "move.power", Value: m.Power, Reason: fmt.Sprintf("must be in [0, %d]", MaxPower)}
	}
	if !m.Type.Valid() {
		return &UnknownTypeError{Name: fmt.Sprintf("#%d", m.Type)}
	}
	if m.Accuracy < 0 || m.Accuracy > 100 {
		return &ValidationError{Field: "move.accuracy", Value: m.Accuracy, Reason: "must be in [0, 100]"}
	}
	return nil
}
