package model

import "time"

// Template is a saved combatant build. Species and moves are stored by name
// and resolved against static data when the template is used.
type Template struct {
	ID        int64     `json:"id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Level     int       `json:"level"`
	Nature    string    `json:"nature"`
	Ability   string    `json:"ability,omitempty"`
	Item      string    `json:"item,omitempty"`
	IVs       StatSet   `json:"ivs"`
	EVs       StatSet   `json:"evs"`
	Moves     []string  `json:"moves"`
	CreatedAt time.Time `json:"createdAt"`
}

// MaxTemplateMoves is the number of moves a template may carry.
const MaxTemplateMoves = 4

// Validate checks the fields a template needs before it is stored.
// Base stats and types come from the species and are checked on use.
func (t Template) Validate() error {
	switch {
	case t.Owner == "":
		return &ValidationError{Field: "owner", Value: t.Owner, Reason: "must not be empty"}
	case t.Name == "":
		return &ValidationError{Field: "name", Value: t.Name, Reason: "must not be empty"}
	case t.Species == "":
		return &ValidationError{Field: "species", Value: t.Species, Reason: "must not be empty"}
	case len(t.Moves) > MaxTemplateMoves:
		return &ValidationError{Field: "moves", Value: len(t.Moves), Reason: "at most 4 moves"}
	}
	probe := Combatant{
		Level: t.Level,
		Types: []Type{TypeNormal},
		Base:  Uniform(1),
		IVs:   t.IVs,
		EVs:   t.EVs,
	}
	return probe.Validate()
}
