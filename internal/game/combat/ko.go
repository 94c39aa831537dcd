package combat

import (
	"fmt"

	"github.com/udisondev/dmgcalc/internal/model"
)

// HitsToKO is the number of identical hits needed to knock out the defender
// with every hit on the lowest roll (Guaranteed) and on the highest (Possible).
// Both are 0 when the move deals no damage.
type HitsToKO struct {
	Guaranteed int `json:"guaranteed"`
	Possible   int `json:"possible"`
}

// KOEstimate summarizes a roll set against a defender's max HP.
type KOEstimate struct {
	OHKO       float64  `json:"ohko"`
	TwoHKO     float64  `json:"twoHko"`
	MinPercent float64  `json:"minPercent"`
	AvgPercent float64  `json:"avgPercent"`
	MaxPercent float64  `json:"maxPercent"`
	HitsToKO   HitsToKO `json:"hitsToKo"`
}

// OHKOCount returns how many of the 16 rolls reach maxHP.
func OHKOCount(rolls DamageRollSet, maxHP int) int {
	n := 0
	for _, r := range rolls {
		if r >= maxHP {
			n++
		}
	}
	return n
}

// TwoHKOCount returns how many of the 256 ordered roll pairs reach maxHP.
// Pairs whose first roll already knocks out are included: the count is the
// cumulative "down within two hits" figure.
func TwoHKOCount(rolls DamageRollSet, maxHP int) int {
	n := 0
	// rolls are sorted, so for each a the qualifying b form a suffix.
	j := RollCount
	for i := 0; i < RollCount; i++ {
		for j > 0 && rolls[i]+rolls[j-1] >= maxHP {
			j--
		}
		n += RollCount - j
	}
	return n
}

// EstimateKO derives knockout odds and HP percentages from a roll set.
func EstimateKO(rolls DamageRollSet, maxHP int) (KOEstimate, error) {
	if maxHP <= 0 {
		return KOEstimate{}, &model.DomainError{Op: "estimate ko", Reason: fmt.Sprintf("non-positive max HP %d", maxHP)}
	}
	for i := 1; i < RollCount; i++ {
		if rolls[i] < rolls[i-1] {
			return KOEstimate{}, &model.DomainError{Op: "estimate ko", Reason: "roll set is not sorted"}
		}
	}

	hp := float64(maxHP)
	est := KOEstimate{
		OHKO:       float64(OHKOCount(rolls, maxHP)) / RollCount,
		TwoHKO:     float64(TwoHKOCount(rolls, maxHP)) / (RollCount * RollCount),
		MinPercent: float64(rolls.Min()) / hp * 100,
		AvgPercent: float64(rolls.Sum()) / RollCount / hp * 100,
		MaxPercent: float64(rolls.Max()) / hp * 100,
	}
	if rolls.Min() > 0 {
		est.HitsToKO.Guaranteed = ceilDiv(maxHP, rolls.Min())
	}
	if rolls.Max() > 0 {
		est.HitsToKO.Possible = ceilDiv(maxHP, rolls.Max())
	}
	return est, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
