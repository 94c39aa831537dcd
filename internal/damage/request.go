package damage

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/dmgcalc/internal/game/combat"
	"github.com/udisondev/dmgcalc/internal/model"
)

// Defaults applied to fields a request leaves out.
const (
	DefaultLevel  = 50
	DefaultNature = "Hardy"
)

// Request is one matchup: two combatants and the shared battle conditions.
type Request struct {
	A          CombatantSpec     `json:"pokemonA" yaml:"pokemon_a"`
	B          CombatantSpec     `json:"pokemonB" yaml:"pokemon_b"`
	Conditions combat.Conditions `json:"conditions" yaml:"conditions"`
}

// CombatantSpec describes one side of a matchup. Exactly one source of base
// data is used, in this order: TemplateID, BaseStats+Types, Species.
// Fields set here override what the template or species provides.
type CombatantSpec struct {
	TemplateID int64          `json:"templateId,omitempty" yaml:"template_id"`
	Species    string         `json:"species,omitempty" yaml:"species"`
	Name       string         `json:"name,omitempty" yaml:"name"`
	Types      []model.Type   `json:"types,omitempty" yaml:"types"`
	BaseStats  *model.StatSet `json:"baseStats,omitempty" yaml:"base_stats"`
	Level      *int           `json:"level,omitempty" yaml:"level"`
	Nature     string         `json:"nature,omitempty" yaml:"nature"`
	Ability    string         `json:"ability,omitempty" yaml:"ability"`
	Item       string         `json:"item,omitempty" yaml:"item"`
	IVs        *model.StatSet `json:"ivs,omitempty" yaml:"ivs"`
	EVs        *model.StatSet `json:"evs,omitempty" yaml:"evs"`
	Moves      []MoveSpec     `json:"moves" yaml:"moves"`
}

// MoveSpec is either a move name resolved through the dex or an inline move.
// In JSON and YAML a bare string is a name; an object is an inline move.
type MoveSpec struct {
	Name   string
	Inline *model.Move
}

// MoveByName returns a MoveSpec resolved through the dex.
func MoveByName(name string) MoveSpec {
	return MoveSpec{Name: name}
}

// InlineMove returns a MoveSpec carrying m as is.
func InlineMove(m model.Move) MoveSpec {
	return MoveSpec{Inline: &m}
}

func (m MoveSpec) MarshalJSON() ([]byte, error) {
	if m.Inline != nil {
		return json.Marshal(m.Inline)
	}
	return json.Marshal(m.Name)
}

func (m *MoveSpec) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*m = MoveByName(name)
		return nil
	}
	var mv model.Move
	if err := json.Unmarshal(b, &mv); err != nil {
		return fmt.Errorf("move must be a name or an object: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("move must be a name or an object: %w", err)
	}
	if err := requireInlineFields(mv, func(key string) bool {
		_, ok := fields[key]
		return ok
	}); err != nil {
		return err
	}
	*m = InlineMove(mv)
	return nil
}

func (m *MoveSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*m = MoveByName(node.Value)
		return nil
	}
	var mv model.Move
	if err := node.Decode(&mv); err != nil {
		return fmt.Errorf("line %d: move must be a name or a mapping: %w", node.Line, err)
	}
	if err := requireInlineFields(mv, func(key string) bool {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				return true
			}
		}
		return false
	}); err != nil {
		return err
	}
	*m = InlineMove(mv)
	return nil
}

// requireInlineFields rejects an inline move that leaves out its type or
// category, whose zero values would otherwise read as Normal and physical.
func requireInlineFields(mv model.Move, has func(key string) bool) error {
	for _, key := range []string{"type", "category"} {
		if !has(key) {
			return &model.ValidationError{Field: "move." + key, Value: mv.DisplayName(), Reason: "required for an inline move"}
		}
	}
	return nil
}
