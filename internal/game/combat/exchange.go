package combat

import (
	"fmt"

	"github.com/udisondev/dmgcalc/internal/model"
)

// DirectionalDamageResult holds every move of one side against the other.
type DirectionalDamageResult struct {
	Moves         []SingleMoveResult `json:"moves"`
	AttackerName  string             `json:"attackerName"`
	DefenderName  string             `json:"defenderName"`
	AttackerStats model.StatSet      `json:"attackerStats"`
	DefenderStats model.StatSet      `json:"defenderStats"`
}

// ExtendedDamageResult is the bidirectional report of one exchange.
type ExtendedDamageResult struct {
	AToB  DirectionalDamageResult `json:"pokemonAToB"`
	BToA  DirectionalDamageResult `json:"pokemonBToA"`
	AName string                  `json:"pokemonAName"`
	BName string                  `json:"pokemonBName"`

	// Warnings lists inputs that were accepted but had no effect,
	// such as an ability without a damage modifier.
	Warnings []string `json:"warnings,omitempty"`
}

// Evaluate computes every move of a against b and every move of b against a.
// Stats are resolved once per side; each move is evaluated against an
// undamaged defender.
func Evaluate(a model.Combatant, movesA []model.Move, b model.Combatant, movesB []model.Move, cond Conditions) (ExtendedDamageResult, error) {
	fa, err := NewFighter(a)
	if err != nil {
		return ExtendedDamageResult{}, fmt.Errorf("pokemon A %s: %w", a.DisplayName(), err)
	}
	fb, err := NewFighter(b)
	if err != nil {
		return ExtendedDamageResult{}, fmt.Errorf("pokemon B %s: %w", b.DisplayName(), err)
	}

	aToB, err := EvaluateDirection(fa, fb, movesA, cond)
	if err != nil {
		return ExtendedDamageResult{}, fmt.Errorf("pokemon A moves: %w", err)
	}
	bToA, err := EvaluateDirection(fb, fa, movesB, cond)
	if err != nil {
		return ExtendedDamageResult{}, fmt.Errorf("pokemon B moves: %w", err)
	}

	return ExtendedDamageResult{
		AToB:  aToB,
		BToA:  bToA,
		AName: a.DisplayName(),
		BName: b.DisplayName(),
	}, nil
}

// EvaluateDirection computes every move of attacker against defender.
func EvaluateDirection(attacker, defender Fighter, moves []model.Move, cond Conditions) (DirectionalDamageResult, error) {
	out := DirectionalDamageResult{
		Moves:         make([]SingleMoveResult, 0, len(moves)),
		AttackerName:  attacker.DisplayName(),
		DefenderName:  defender.DisplayName(),
		AttackerStats: attacker.Stats,
		DefenderStats: defender.Stats,
	}
	for _, mv := range moves {
		res, err := CalcMove(attacker, defender, mv, cond)
		if err != nil {
			return DirectionalDamageResult{}, fmt.Errorf("move %s: %w", mv.DisplayName(), err)
		}
		out.Moves = append(out.Moves, res)
	}
	return out, nil
}
